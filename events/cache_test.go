package events

import (
	"context"
	"fmt"
	"testing"

	"eventforge/rdx"

	"github.com/redis/go-redis/v9"
)

// recordingHook captures issued commands instead of sending them to a
// server, so cache behavior is observable without a Redis instance.
type recordingHook struct {
	cmds []string
}

func (h *recordingHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *recordingHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.cmds = append(h.cmds, fmt.Sprintf("%s %v", cmd.Name(), cmd.Args()[1:]))
		return nil
	}
}

func (h *recordingHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

// Every event mutation that changes what vendors see in the browse list
// (moderation, applied edits, banner changes, deletes) goes through
// invalidateApprovedCache; this pins down the key it drops.
func TestInvalidateApprovedCacheDropsBrowseKey(t *testing.T) {
	hook := &recordingHook{}
	rdx.Conn.AddHook(hook)

	invalidateApprovedCache()

	want := fmt.Sprintf("del [%s]", approvedCacheKey)
	for _, c := range hook.cmds {
		if c == want {
			return
		}
	}
	t.Fatalf("expected %q to be issued, got %v", want, hook.cmds)
}
