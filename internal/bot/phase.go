package bot

import (
	"context"
	"fmt"

	domerrors "github.com/garyellow/winston-hrbot-go/internal/errors"
	"github.com/garyellow/winston-hrbot-go/internal/lex"
)

// Phase is the conversational state of one turn.
type Phase int

const (
	// PhaseEliciting validates slots and may re-prompt or confirm.
	PhaseEliciting Phase = iota + 1
	// PhaseFulfilling calls collaborators and closes the turn.
	PhaseFulfilling
)

func (p Phase) String() string {
	switch p {
	case PhaseEliciting:
		return "eliciting"
	case PhaseFulfilling:
		return "fulfilling"
	default:
		return "unknown"
	}
}

// PhaseOf maps the host's invocation source to a Phase.
func PhaseOf(src lex.InvocationSource) (Phase, error) {
	switch src {
	case lex.DialogCodeHook:
		return PhaseEliciting, nil
	case lex.FulfillmentCodeHook:
		return PhaseFulfilling, nil
	default:
		return 0, fmt.Errorf("%w: %q", domerrors.ErrInvalidInvocationSource, src)
	}
}

// EffectivePhase returns the phase h actually runs in. Handlers without an
// Eliciting state always fulfill.
func EffectivePhase(h Handler, p Phase) Phase {
	if p == PhaseEliciting {
		if _, ok := h.(DialogHandler); ok {
			return PhaseEliciting
		}
	}
	return PhaseFulfilling
}

// Run executes h in phase p.
func Run(ctx context.Context, h Handler, p Phase, req *lex.IntentRequest) *lex.Response {
	if EffectivePhase(h, p) == PhaseEliciting {
		return h.(DialogHandler).Elicit(ctx, req)
	}
	return h.Fulfill(ctx, req)
}
