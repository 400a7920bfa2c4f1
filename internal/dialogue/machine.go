package dialogue

import (
	"fmt"

	"go.uber.org/zap"

	"autostream/internal/intent"
	"autostream/internal/knowledge"
)

// Greeting is the canned response for the GREET intent.
const Greeting = "Hello 👋 How can I help you today?"

// CaptureFunc is the terminal lead-capture side-effect. It is an injected
// collaborator and may fail; the machine never masks its error.
type CaptureFunc func(name, email, platform string) error

// Machine dispatches one turn of conversation: the qualification stage flow
// for HIGH_INTENT, and the stateless greeting/inquiry handlers otherwise.
// Every handler sets State.Response exactly once and returns immediately;
// no later code path in the same turn may overwrite it.
type Machine struct {
	retriever *knowledge.Retriever
	tree      knowledge.Provider
	capture   CaptureFunc
	limit     int
	logger    *zap.Logger
}

// NewMachine wires the machine to its collaborators. A nil tree provider
// degrades to an empty tree and a nil capture func to a no-op, so a
// partially wired machine still answers instead of crashing. limit caps
// retrieval results per inquiry; 0 means knowledge.DefaultLimit.
func NewMachine(retriever *knowledge.Retriever, tree knowledge.Provider, capture CaptureFunc, limit int, logger *zap.Logger) *Machine {
	if retriever == nil {
		retriever = knowledge.NewRetriever()
	}
	if tree == nil {
		tree = knowledge.Static(nil)
	}
	if capture == nil {
		capture = func(string, string, string) error { return nil }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit <= 0 {
		limit = knowledge.DefaultLimit
	}
	return &Machine{
		retriever: retriever,
		tree:      tree,
		capture:   capture,
		limit:     limit,
		logger:    logger,
	}
}

// HandleTurn runs the dispatch for the current utterance. The only error it
// can return is a capture collaborator failure; every expected non-match is
// consumed internally as a re-prompt.
func (m *Machine) HandleTurn(st *State) error {
	switch st.Intent {
	case intent.HighIntent:
		return m.qualify(st)
	case intent.Inquiry:
		m.inquire(st)
		return nil
	default:
		st.Response = Greeting
		return nil
	}
}

// qualify advances the lead-qualification dialogue by exactly one step.
// Stages only move forward; a failed extraction re-asks the same question.
func (m *Machine) qualify(st *State) error {
	m.logger.Debug("qualification step",
		zap.String("conversation", st.ConversationID),
		zap.String("stage", string(st.Stage)))

	switch st.Stage {
	case StageInitial:
		st.Stage = StageAskingName
		st.Response = "Great! I'd be happy to help you get started. What's your name?"
		return nil

	case StageAskingName:
		name, ok := extractName(st.Utterance)
		if !ok {
			st.Response = "I didn't catch your name. Could you please tell me your name?"
			return nil
		}
		st.Lead.Name = name
		st.Stage = StageAskingEmail
		st.Response = fmt.Sprintf("Nice to meet you, %s! Now, what's your email address?", name)
		return nil

	case StageAskingEmail:
		email, ok := extractEmail(st.Utterance)
		if !ok {
			st.Response = "I need a valid email address. Could you please provide your email?"
			return nil
		}
		st.Lead.Email = email
		st.Stage = StageAskingPlatform
		st.Response = "Perfect! One last question - what creator platform are you planning to use? (e.g., YouTube, TikTok, Instagram, etc.)"
		return nil

	case StageAskingPlatform:
		platform, ok := extractPlatform(st.Utterance)
		if !ok {
			st.Response = "Which creator platform will you be using? For example: YouTube, TikTok, Instagram, LinkedIn, etc.?"
			return nil
		}
		st.Lead.Platform = platform
		st.Stage = StageCompleted
		// One-shot capture: the flag is set before the call, so a failed
		// capture is reported but never retried on replayed turns. The
		// stage is not rolled back either way.
		if !st.Captured {
			st.Captured = true
			m.logger.Info("capturing lead",
				zap.String("conversation", st.ConversationID),
				zap.String("platform", platform))
			if err := m.capture(st.Lead.Name, st.Lead.Email, st.Lead.Platform); err != nil {
				return fmt.Errorf("lead capture: %w", err)
			}
		}
		st.Response = m.confirmation(st)
		return nil

	case StageCompleted:
		// Idempotent: same confirmation, side-effect not repeated.
		st.Response = m.confirmation(st)
		return nil
	}

	// Unknown stage values cannot arise from this package; treat them as a
	// fresh qualification rather than failing the turn.
	st.Stage = StageInitial
	return m.qualify(st)
}

func (m *Machine) confirmation(st *State) string {
	return fmt.Sprintf("Thanks %s! I've captured your information. Our team will be in touch soon!", st.Lead.Name)
}

// inquire answers an INQUIRY turn strictly from retrieved knowledge and
// records what was used. An empty retrieval produces the explicit
// no-information message, never a guess.
func (m *Machine) inquire(st *State) {
	entries := m.retriever.Retrieve(st.Utterance, m.tree(), m.limit)
	st.Retrieved = &Retrieved{
		Context: knowledge.BuildContext(string(st.Intent), entries),
		Sources: knowledge.Sources(entries),
	}
	st.Response = knowledge.FormatEntries(st.Utterance, entries)
}
