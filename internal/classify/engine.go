package classify

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// RejectReason says why a message produced no transaction. Rejection is the
// ordinary outcome for most real-world notifications, never an error.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectExcluded
	RejectNoAmount
	RejectNonPositiveAmount
	RejectUnclassified
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectExcluded:
		return "excluded-by-keyword"
	case RejectNoAmount:
		return "no-amount-found"
	case RejectNonPositiveAmount:
		return "amount-non-positive"
	case RejectUnclassified:
		return "type-unclassified"
	}
	return "unknown"
}

// Namespace for deterministic transaction IDs.
var idNamespace = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

// MessageID derives a stable transaction ID from a message. The same message
// always yields the same ID, keeping classification idempotent.
func MessageID(msg model.RawMessage) string {
	key := fmt.Sprintf("%s|%d|%s", msg.Sender, msg.TimestampMillis, msg.Text)
	return uuid.NewSHA1(idNamespace, []byte(key)).String()
}

// Engine runs the four-stage pipeline: exclusion filter, amount extractor,
// type classifier, category assigner. Stateless across messages; safe for
// concurrent use.
type Engine struct {
	vocab   Vocabulary
	workers int
	log     zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets how many goroutines ClassifyAll fans out across.
// Values below 2 keep classification sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithLogger sets the logger used for debug rejection logging.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithExtraVocabulary appends user-supplied keywords to the built-in tables.
func WithExtraVocabulary(extra Vocabulary) Option {
	return func(e *Engine) { e.vocab = e.vocab.Merge(extra) }
}

// NewEngine creates an Engine with the default vocabulary.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		vocab:   DefaultVocabulary(),
		workers: 1,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Classify runs one message through the pipeline. A rejection at any stage
// drops the message; no partial record is ever returned.
func (e *Engine) Classify(msg model.RawMessage) (model.Transaction, RejectReason) {
	lowered := strings.ToLower(msg.Text)

	if e.vocab.Excluded(lowered) {
		return e.reject(msg, RejectExcluded)
	}

	cand, ok := e.vocab.ExtractAmount(lowered)
	if !ok {
		return e.reject(msg, RejectNoAmount)
	}
	if !cand.Value.IsPositive() {
		return e.reject(msg, RejectNonPositiveAmount)
	}

	kind, ok := e.vocab.ClassifyKind(lowered, cand.SourceIndex)
	if !ok {
		return e.reject(msg, RejectUnclassified)
	}

	txn := model.Transaction{
		ID:         MessageID(msg),
		Kind:       kind,
		Amount:     cand.Value,
		Category:   e.vocab.AssignCategory(lowered, kind),
		SourceText: msg.Text,
		Sender:     msg.Sender,
	}
	if ts, hasTime := msg.Time(); hasTime {
		txn.OccurredAt = ts
	}
	return txn, RejectNone
}

func (e *Engine) reject(msg model.RawMessage, reason RejectReason) (model.Transaction, RejectReason) {
	e.log.Debug().
		Str("sender", msg.Sender).
		Stringer("reason", reason).
		Msg("message rejected")
	return model.Transaction{}, reason
}

// ClassifyAll classifies a batch of independent messages and returns the
// accepted transactions in input order. With more than one worker the batch
// is fanned out across goroutines; results are identical either way.
func (e *Engine) ClassifyAll(msgs []model.RawMessage) []model.Transaction {
	if len(msgs) == 0 {
		return nil
	}

	type outcome struct {
		txn      model.Transaction
		accepted bool
	}
	outcomes := make([]outcome, len(msgs))

	classify := func(i int) {
		txn, reason := e.Classify(msgs[i])
		outcomes[i] = outcome{txn: txn, accepted: reason == RejectNone}
	}

	workers := min(e.workers, len(msgs))
	if workers <= 1 {
		for i := range msgs {
			classify(i)
		}
	} else {
		indexes := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range indexes {
					classify(i)
				}
			}()
		}
		for i := range msgs {
			indexes <- i
		}
		close(indexes)
		wg.Wait()
	}

	var txns []model.Transaction
	for _, o := range outcomes {
		if o.accepted {
			txns = append(txns, o.txn)
		}
	}
	return txns
}
