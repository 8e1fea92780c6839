package git

import (
	"github.com/go-git/go-billy/v5"
)

// MissingRef is shown when HEAD resolves but carries no usable name (detached HEAD).
const MissingRef = "##missing##"

// State is an in-progress multi-step operation of a repository.
type State int

const (
	StateClean State = iota
	StateMerge
	StateRevert
	StateRevertSequence
	StateCherryPick
	StateCherryPickSequence
	StateBisect
	StateRebase
	StateRebaseInteractive
	StateRebaseMerge
	StateApplyMailbox
	StateApplyMailboxOrRebase
)

// stateLabels maps every state to the label shown in the prompt. Clean has none.
var stateLabels = map[State]string{
	StateClean:                "",
	StateMerge:                "Merge ",
	StateRevert:               "Revert ",
	StateRevertSequence:       "RevertSequence ",
	StateCherryPick:           "CherryPick ",
	StateCherryPickSequence:   "CherryPickSequence ",
	StateBisect:               "Bisect ",
	StateRebase:               "Rebase ",
	StateRebaseInteractive:    "RebaseInteractive ",
	StateRebaseMerge:          "RebaseMerge ",
	StateApplyMailbox:         "ApplyMailbox ",
	StateApplyMailboxOrRebase: "ApplyMailboxOrRebase ",
}

// States returns every known state in declaration order.
func States() []State {
	states := make([]State, 0, len(stateLabels))
	for s := StateClean; s <= StateApplyMailboxOrRebase; s++ {
		states = append(states, s)
	}
	return states
}

// Label returns the prompt label of the state, including its trailing space.
func (s State) Label() string {
	return stateLabels[s]
}

func (s State) String() string {
	if s == StateClean {
		return "Clean"
	}
	if label, ok := stateLabels[s]; ok {
		return label[:len(label)-1]
	}
	return "Unknown"
}

// RepoStatus is a point-in-time observation of the repository around a directory.
type RepoStatus struct {
	// Reference is the short name of HEAD, or MissingRef.
	Reference string
	State     State
}

// DetectState derives the operation in progress from the marker files git
// leaves in its directory. The checks run in the order git itself uses, since
// several markers can coexist (e.g. a merge stopped inside a rebase).
func DetectState(gitDir billy.Filesystem) State {
	exists := func(path string) bool {
		_, err := gitDir.Stat(path)
		return err == nil
	}

	switch {
	case exists("rebase-merge/interactive"):
		return StateRebaseInteractive
	case exists("rebase-merge"):
		return StateRebaseMerge
	case exists("rebase-apply/rebasing"):
		return StateRebase
	case exists("rebase-apply/applying"):
		return StateApplyMailbox
	case exists("rebase-apply"):
		return StateApplyMailboxOrRebase
	case exists("MERGE_HEAD"):
		return StateMerge
	case exists("REVERT_HEAD"):
		if exists("sequencer/todo") {
			return StateRevertSequence
		}
		return StateRevert
	case exists("CHERRY_PICK_HEAD"):
		if exists("sequencer/todo") {
			return StateCherryPickSequence
		}
		return StateCherryPick
	case exists("BISECT_LOG"):
		return StateBisect
	default:
		return StateClean
	}
}
