// Package dialogue owns the per-conversation turn state and the
// lead-qualification state machine. A State is created on the first
// utterance, mutated in place by every later turn, and lives only as long
// as the caller keeps it: nothing here persists conversations or registers
// them process-wide.
package dialogue

import (
	"time"

	"autostream/internal/intent"
)

// Stage is the current step of the lead-qualification dialogue. Stages only
// move forward; malformed input re-asks the same stage's question instead of
// advancing or regressing.
type Stage string

const (
	StageInitial        Stage = "initial"
	StageAskingName     Stage = "asking_name"
	StageAskingEmail    Stage = "asking_email"
	StageAskingPlatform Stage = "asking_platform"
	StageCompleted      Stage = "completed"
)

// Speaker identifies who produced a transcript message.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerAgent Speaker = "agent"
)

// Message is one transcript line. The transcript is append-only; the core
// never truncates it.
type Message struct {
	Timestamp time.Time     `json:"timestamp"`
	Speaker   Speaker       `json:"speaker"`
	Content   string        `json:"content"`
	Intent    intent.Intent `json:"intent,omitempty"`
	Stage     Stage         `json:"stage,omitempty"`
}

// Lead holds the fields collected by the qualification dialogue. Each field
// stays empty until its stage successfully extracts it.
type Lead struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Platform string `json:"platform"`
}

// Retrieved records the knowledge context used for the current turn. It is
// overwritten whenever retrieval runs and nil otherwise.
type Retrieved struct {
	Context string   `json:"context"`
	Sources []string `json:"sources"`
}

// State is the mutable conversation record threaded through every turn.
// It is owned exclusively by the caller; at most one turn may ever be in
// flight against it, and the core does no locking of its own.
type State struct {
	ConversationID string            `json:"conversation_id"`
	Utterance      string            `json:"utterance"`
	Intent         intent.Intent     `json:"intent,omitempty"`
	Stage          Stage             `json:"stage"`
	Lead           Lead              `json:"lead"`
	// Captured is the one-shot guard on the capture side-effect: set when
	// the capture attempt fires, never cleared, never re-fired.
	Captured   bool              `json:"captured"`
	Entities   map[string]string `json:"entities,omitempty"`
	Retrieved  *Retrieved        `json:"retrieved,omitempty"`
	Response   string            `json:"response,omitempty"`
	Err        string            `json:"error,omitempty"`
	Transcript []Message         `json:"transcript"`
}

// NewState returns a fresh conversation state at the initial stage.
func NewState(conversationID string) *State {
	return &State{
		ConversationID: conversationID,
		Stage:          StageInitial,
	}
}

// AppendUser records the user's utterance on the transcript.
func (s *State) AppendUser(content string) {
	s.Transcript = append(s.Transcript, Message{
		Timestamp: time.Now(),
		Speaker:   SpeakerUser,
		Content:   content,
	})
}

// AppendAgent records the agent's response on the transcript, tagged with
// the intent and stage that produced it.
func (s *State) AppendAgent(content string) {
	s.Transcript = append(s.Transcript, Message{
		Timestamp: time.Now(),
		Speaker:   SpeakerAgent,
		Content:   content,
		Intent:    s.Intent,
		Stage:     s.Stage,
	})
}
