package factory

import (
	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attachBody gives entry its world body and a matching broadphase object,
// and adds the object to the space if one exists.
func attachBody(ecs *ecs.ECS, entry *donburi.Entry, body gamemath.Body, disabled bool, resolvTag string) {
	x, y, w, h := cfg.Projection().BoundsToScreen(body)

	obj := resolv.NewObject(x, y, w, h, resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Body.SetValue(entry, components.BodyData{Body: body, Disabled: disabled})
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
