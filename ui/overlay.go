package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/pong/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	startHint = "Press ENTER to start\nESC to exit"
	keysHint  = "Player one: W / S    Player two: Up / Down    M: mute    F3: debug"
)

// Status is what the overlay shows between games.
type Status struct {
	State        cfg.MatchStateID
	Winner       string
	LeftWins     int
	RightWins    int
	LongestRally int
}

// Overlay is the welcome and game over panel drawn while no ball is in play.
type Overlay struct {
	UI *ebitenui.UI

	titleLabel  *widget.Label
	resultLabel *widget.Label
	tallyLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewOverlay builds the panel. It returns an error only if the embedded
// font cannot be parsed.
func NewOverlay() (*Overlay, error) {
	o := &Overlay{}
	if err := o.loadFonts(); err != nil {
		return nil, err
	}
	o.buildUI()
	return o, nil
}

func (o *Overlay) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load overlay font: %w", err)
	}

	o.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.TitleFontSize}
	o.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.TextFontSize}
	o.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.TextFontSize * 0.75}
	return nil
}

func (o *Overlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	o.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("PONG", &o.titleFace, &widget.LabelColor{
			Idle: cfg.UI.TitleColor,
		}),
	)
	contentContainer.AddChild(o.titleLabel)

	o.resultLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.normalFace, &widget.LabelColor{
			Idle: cfg.UI.BannerColor,
		}),
	)
	contentContainer.AddChild(o.resultLabel)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text(startHint, &o.normalFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
	contentContainer.AddChild(hintLabel)

	o.tallyLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.smallFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	)
	contentContainer.AddChild(o.tallyLabel)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(keysHint, &o.smallFace, &widget.LabelColor{
			Idle: cfg.Grey,
		}),
	))

	rootContainer.AddChild(contentContainer)

	o.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh updates the labels from the match and scoreboard.
func (o *Overlay) Refresh(s Status) {
	o.resultLabel.Label = ""
	if s.State == cfg.MatchStateEnded {
		o.resultLabel.Label = s.Winner + " wins!"
	}
	o.tallyLabel.Label = tallyText(s)
}

func tallyText(s Status) string {
	if s.LeftWins+s.RightWins == 0 {
		return ""
	}
	return fmt.Sprintf("Games  %d : %d    Longest rally  %d", s.LeftWins, s.RightWins, s.LongestRally)
}

// Visible reports whether the overlay should be drawn for a match state.
func Visible(state cfg.MatchStateID) bool {
	return state != cfg.MatchStateRunning
}

func (o *Overlay) Update() {
	o.UI.Update()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.UI.Draw(screen)
}
