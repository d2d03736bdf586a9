package systems

import (
	"log"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/shared/gamemath"
	"github.com/automoto/pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions finds pairs whose overlap began this frame, delivers one
// CollisionEvent per pair, and finally forgets pairs that have separated.
//
// Only the ball and the bats look for contacts; walls and end zones never
// move. Events are delivered in broadphase order, which is not specified.
func UpdateCollisions(e *ecs.ECS) {
	contacts := getOrCreateContacts(e)

	for _, ev := range DetectContacts(e, contacts) {
		DispatchCollision(e, ev)
	}

	pruneContacts(e, contacts)
}

// DetectContacts returns an event for every pair that overlaps now and was
// not already in contact. resolv narrows the candidates down to shared cells;
// gamemath.Overlaps decides.
func DetectContacts(e *ecs.ECS, contacts *components.ContactsData) []gamemath.CollisionEvent {
	var events []gamemath.CollisionEvent

	visit := func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if body.Disabled {
			return
		}
		obj := components.Object.Get(entry)
		c := obj.Check(0, 0)
		if c == nil {
			return
		}

		for _, candidate := range c.Objects {
			otherEntry, ok := candidate.Data.(*donburi.Entry)
			if !ok || !otherEntry.Valid() || !otherEntry.HasComponent(components.Body) {
				continue
			}
			other := components.Body.Get(otherEntry)
			if other.Disabled || !gamemath.Overlaps(body.Body, other.Body) {
				continue
			}

			if contacts.Begin(gamemath.NewPairKey(entry.Entity(), otherEntry.Entity())) {
				events = append(events, gamemath.CollisionEvent{A: entry.Entity(), B: otherEntry.Entity()})
			}
		}
	}

	tags.Ball.Each(e.World, visit)
	tags.Bat.Each(e.World, visit)
	return events
}

// DispatchCollision delivers ev to both participants, A first.
func DispatchCollision(e *ecs.ECS, ev gamemath.CollisionEvent) {
	handleContact(e, ev.A, ev.B)
	handleContact(e, ev.B, ev.A)
}

func handleContact(e *ecs.ECS, self, other donburi.Entity) {
	selfEntry, ok := liveBody(e.World, self)
	if !ok {
		return
	}
	otherEntry, ok := liveBody(e.World, other)
	if !ok {
		return
	}

	switch components.Body.Get(selfEntry).Kind {
	case gamemath.KindBall:
		onBallContact(e, selfEntry, otherEntry)
	case gamemath.KindBat:
		onBatContact(selfEntry, otherEntry)
	}
}

// liveBody resolves an entity that still exists, has a body, and is enabled.
// Anything else classifies as nothing.
func liveBody(w donburi.World, entity donburi.Entity) (*donburi.Entry, bool) {
	if !w.Valid(entity) {
		return nil, false
	}
	entry := w.Entry(entity)
	if !entry.HasComponent(components.Body) || components.Body.Get(entry).Disabled {
		return nil, false
	}
	return entry, true
}

func onBallContact(e *ecs.ECS, ballEntry, otherEntry *donburi.Entry) {
	ball := components.Body.Get(ballEntry)
	other := components.Body.Get(otherEntry)

	outcome := gamemath.Classify(ball.Body, other.Body)
	switch outcome.Kind {
	case gamemath.OutcomeReflectHorizontal:
		ball.Velocity = gamemath.ReflectWithSpeedUp(ball.Velocity, outcome, cfg.Ball.BatSpeedUp)
		if match, ok := getMatch(e); ok {
			match.Rallies++
		}
		flash(otherEntry)
		queueSound(e, cfg.SoundBatHit)

	case gamemath.OutcomeReflectVertical:
		ball.Velocity = gamemath.ReflectWithSpeedUp(ball.Velocity, outcome, cfg.Ball.BatSpeedUp)
		flash(otherEntry)
		queueSound(e, cfg.SoundWallBounce)

	case gamemath.OutcomeEndGame:
		ball.Disabled = true
		if err := EndGame(e, outcome.LeftPlayerWins); err != nil {
			log.Printf("Warning: ball reached end zone: %v", err)
		}

	case gamemath.OutcomeNoOp:
	}
}

// onBatContact pushes a bat that ran into a wall back out along y and stops it.
func onBatContact(batEntry, otherEntry *donburi.Entry) {
	bat := components.Body.Get(batEntry)
	other := components.Body.Get(otherEntry)
	if other.Kind != gamemath.KindWall {
		return
	}

	bat.Position = gamemath.CorrectPositionWithMargin(bat.Body, other.Body, cfg.Collision.Epsilon)
	bat.Velocity.Y = 0
}

// pruneContacts drops every tracked pair that no longer overlaps at the
// positions left by dispatch, so its next overlap begins a new contact.
func pruneContacts(e *ecs.ECS, contacts *components.ContactsData) {
	for key := range contacts.Active {
		a, okA := liveBody(e.World, key.Lo)
		b, okB := liveBody(e.World, key.Hi)
		if okA && okB && gamemath.Overlaps(components.Body.Get(a).Body, components.Body.Get(b).Body) {
			continue
		}
		contacts.End(key)
	}
}

func getOrCreateContacts(e *ecs.ECS) *components.ContactsData {
	entry, ok := components.Contacts.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Contacts))
	}
	return components.Contacts.Get(entry)
}

func flash(entry *donburi.Entry) {
	if entry.HasComponent(components.Flash) {
		components.Flash.Get(entry).Duration = cfg.Match.FlashFrames
	}
}
