package txn

// findUndoTarget scans commits back-to-front for the EndTrans commit that
// "undo" currently refers to at this level of the tree.
//
// Net balance: walking backwards, every Undo we pass cancels the EndTrans
// it reversed (undoCnt++); every Redo we pass re-cancels that cancellation
// (undoCnt--). The first EndTrans reached with undoCnt == 0 has not yet
// been paired with an undo and is the target. A BeginTrans is a commit
// still being recorded — reaching one means there is nothing further back
// to undo at this level, so the scan stops immediately.
func findUndoTarget[R any](commits []*Commit[R]) *Commit[R] {
	undoCnt := 0
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		switch c.tag {
		case BeginTrans:
			return nil
		case EndTrans:
			if undoCnt == 0 {
				return c
			}
			undoCnt--
		case Undo:
			undoCnt++
		case Redo:
			undoCnt--
		}
	}
	return nil
}

// findRedoTarget scans commits back-to-front for the Undo commit that
// "redo" currently refers to at this level of the tree.
//
// Mirrors findUndoTarget with Undo/Redo's roles swapped: every Redo passed
// cancels the Undo it reversed (redoCnt++); every Undo passed beyond that
// reopens one more redo slot in reverse (redoCnt--). Either a BeginTrans or
// an EndTrans ends the scan — redo never reaches across a closed original
// transaction that has not itself been undone.
func findRedoTarget[R any](commits []*Commit[R]) *Commit[R] {
	redoCnt := 0
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		switch c.tag {
		case BeginTrans, EndTrans:
			return nil
		case Undo:
			if redoCnt == 0 {
				return c
			}
			redoCnt--
		case Redo:
			redoCnt++
		}
	}
	return nil
}
