package txn

import "fmt"

// ErrNotInTransaction is the value Modify panics with when the manager has
// no open transaction to record against.
type ErrNotInTransaction struct{}

func (e ErrNotInTransaction) Error() string {
	return "txn: Modify called with no open transaction"
}

// ErrInvalidCommitTag reports an internal-consistency violation: a scan
// handed the manager a commit whose tag does not match what the caller
// (undoCommit or redoCommit) expected. It should never occur in practice —
// the scans only ever return commits of the tag their caller asked for —
// and exists as a defensive assertion, not a user-facing condition.
type ErrInvalidCommitTag struct {
	Want CommitTag
	Got  CommitTag
	ID   CommitId
}

func (e ErrInvalidCommitTag) Error() string {
	return fmt.Sprintf("txn: commit %d has tag %s, want %s", e.ID, e.Got, e.Want)
}
