// Package agent provides the turn orchestrator, the sole entry point a
// caller needs: feed it one utterance plus the previous turn state and get
// the updated state back. The orchestrator retains nothing between calls;
// the caller owns the conversation's lifetime.
package agent

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autostream/internal/dialogue"
	"autostream/internal/intent"
	"autostream/internal/knowledge"
)

// Options wires the orchestrator's collaborators. Everything is injected;
// there are no process-wide singletons, so independent conversations and
// tests never share hidden state.
type Options struct {
	// Tree supplies the knowledge snapshot per turn. Nil degrades to an
	// empty tree.
	Tree knowledge.Provider
	// Capture is the terminal lead-capture side-effect. Nil is a no-op.
	Capture dialogue.CaptureFunc
	// RetrievalLimit caps entries per inquiry; 0 means knowledge.DefaultLimit.
	RetrievalLimit int
	Logger         *zap.Logger
}

// Orchestrator drives one full decision cycle per utterance: intent
// resolution, entity extraction, stage/intent dispatch, transcript upkeep.
type Orchestrator struct {
	classifier *intent.Classifier
	machine    *dialogue.Machine
	logger     *zap.Logger
}

// New builds an Orchestrator from Options.
func New(opts Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		classifier: intent.NewClassifier(),
		machine:    dialogue.NewMachine(knowledge.NewRetriever(), opts.Tree, opts.Capture, opts.RetrievalLimit, logger),
		logger:     logger,
	}
}

// RunTurn processes one utterance against prev, mutating and returning it;
// a nil prev starts a fresh conversation. Expected non-matches never surface
// as errors. Collaborator failures and internal panics are caught here,
// converted to an apology response plus an error marker on the state, and
// never lose prior transcript content.
func (o *Orchestrator) RunTurn(utterance string, prev *dialogue.State) (st *dialogue.State) {
	if prev != nil {
		st = prev
	} else {
		st = dialogue.NewState(uuid.NewString())
	}

	st.Utterance = utterance
	st.Response = ""
	st.Err = ""
	st.Retrieved = nil
	st.AppendUser(utterance)

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("turn panicked",
				zap.String("conversation", st.ConversationID),
				zap.Any("panic", r))
			o.fail(st, fmt.Errorf("%v", r))
		}
	}()

	// Intent resolution is owned by the machine while qualification is in
	// progress: a HIGH_INTENT conversation past the initial stage is never
	// reclassified, so "john@example.com" stays a qualification answer.
	if st.Stage == dialogue.StageInitial || st.Intent != intent.HighIntent {
		st.Intent = o.classifier.Classify(utterance)
	}
	st.Entities = o.classifier.ExtractEntities(utterance)

	o.logger.Debug("turn",
		zap.String("conversation", st.ConversationID),
		zap.String("intent", string(st.Intent)),
		zap.String("stage", string(st.Stage)))

	if err := o.machine.HandleTurn(st); err != nil {
		o.logger.Error("turn failed",
			zap.String("conversation", st.ConversationID),
			zap.Error(err))
		o.fail(st, err)
		return st
	}

	if st.Response != "" {
		st.AppendAgent(st.Response)
	}
	return st
}

// fail records the error on the state and emits the apology response. The
// stage is left wherever the turn put it so the conversation can continue.
func (o *Orchestrator) fail(st *dialogue.State, err error) {
	st.Err = err.Error()
	st.Response = fmt.Sprintf("I apologize, but I encountered an error while processing your request: %v", err)
	st.AppendAgent(st.Response)
}
