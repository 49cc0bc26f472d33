package system

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/warpdrift/core"
	"github.com/lixenwraith/warpdrift/engine/mocks"
	"github.com/lixenwraith/warpdrift/event"
)

func TestAudioPlaysCueForEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	cues := mocks.NewMockCuePlayer(ctrl)

	w, _ := newTestWorld(t)
	w.Resources.Cues = cues
	w.AddSystem(NewAudioSystem(w))

	gomock.InOrder(
		cues.EXPECT().Play(core.CueLaser).Return(true),
		cues.EXPECT().Play(core.CueExplode).Return(false),
	)

	w.PushEvent(event.EventProjectileFired, &event.ProjectileFiredPayload{})
	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{})
	w.PushEvent(event.EventTravelComplete, nil) // no cue
	tick(w, 16*time.Millisecond)

	if got := w.Resources.Status.Ints.Get("audio.played").Load(); got != 1 {
		t.Errorf("Expected 1 played cue, got %d", got)
	}
	if got := w.Resources.Status.Ints.Get("audio.dropped").Load(); got != 1 {
		t.Errorf("Expected 1 dropped cue, got %d", got)
	}
}

func TestAudioDisabled(t *testing.T) {
	w, _ := newTestWorld(t)
	w.AddSystem(NewAudioSystem(w))

	w.PushEvent(event.EventWarpEngaged, &event.WarpEngagedPayload{})
	tick(w, 16*time.Millisecond)

	if got := w.Resources.Status.Ints.Get("audio.played").Load(); got != 0 {
		t.Errorf("Expected no cues without a player, got %d", got)
	}
}
