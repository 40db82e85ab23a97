// Package install copies agent definitions into a target directory.
package install

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/agent-system/internal/agents"
	"github.com/conn-castle/agent-system/internal/messages"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var (
	// ErrTargetUnavailable reports that the target cannot be used as a directory
	// or that a file inside it could not be inspected or written.
	ErrTargetUnavailable = errors.New(messages.InstallTargetUnavailable)
	// ErrSourceUnreadable reports that a payload could not be read from the source.
	ErrSourceUnreadable = agents.ErrUnreadable
)

// Outcome is the result of reconciling a single payload.
type Outcome int

const (
	// OutcomeCopied means the payload was written to the target.
	OutcomeCopied Outcome = iota + 1
	// OutcomeSkipped means a file with the same name already existed and was left alone.
	OutcomeSkipped
)

// String returns the report word for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return messages.InstallCopyWord
	case OutcomeSkipped:
		return messages.InstallSkipWord
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ItemResult records the outcome for one payload.
type ItemResult struct {
	File    string
	Outcome Outcome
}

// Result summarizes an install.
type Result struct {
	// Target is the absolute, cleaned target directory.
	Target  string
	Copied  int
	Skipped int
	// Items holds per-payload outcomes in input order.
	Items []ItemResult
}

// Options controls installer behavior. Build it once and do not mutate it during Run.
type Options struct {
	// Target is the destination directory; relative paths resolve against the working directory.
	Target string
	// Payloads are reconciled in order.
	Payloads []agents.Payload
	// Source supplies payload content.
	Source fs.FS
	// Force overwrites existing files instead of skipping them.
	Force  bool
	System System
}

type installer struct {
	target string
	source fs.FS
	force  bool
	sys    System
	result Result
}

// Run reconciles opts.Payloads into opts.Target.
// Without Force, payloads whose file already exists in the target are skipped
// and the existing file is not touched. With Force, every payload is written.
// The first error aborts the run; files written before it stay on disk.
func Run(opts Options) (Result, error) {
	if strings.TrimSpace(opts.Target) == "" {
		return Result{}, fmt.Errorf(messages.InstallTargetRequired)
	}
	if opts.System == nil {
		return Result{}, fmt.Errorf(messages.InstallSystemRequired)
	}
	if opts.Source == nil && len(opts.Payloads) > 0 {
		return Result{}, fmt.Errorf(messages.InstallSourceRequired)
	}
	target, err := filepath.Abs(opts.Target)
	if err != nil {
		return Result{}, fmt.Errorf("%w: "+messages.InstallResolveTargetFmt, ErrTargetUnavailable, opts.Target, err)
	}

	inst := &installer{
		target: filepath.Clean(target),
		source: opts.Source,
		force:  opts.Force,
		sys:    opts.System,
	}
	inst.result = Result{
		Target: inst.target,
		Items:  make([]ItemResult, 0, len(opts.Payloads)),
	}
	if err := inst.ensureTarget(); err != nil {
		return Result{}, err
	}
	for _, payload := range opts.Payloads {
		if err := inst.reconcile(payload); err != nil {
			return Result{}, err
		}
	}
	return inst.result, nil
}

// ensureTarget creates the target directory, tolerating one that already exists.
func (inst *installer) ensureTarget() error {
	info, err := inst.sys.Stat(inst.target)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: "+messages.InstallTargetNotDirFmt, ErrTargetUnavailable, inst.target)
		}
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: "+messages.InstallFailedStatFmt, ErrTargetUnavailable, inst.target, err)
	}
	if err := inst.sys.MkdirAll(inst.target, dirPerm); err != nil {
		return fmt.Errorf("%w: "+messages.InstallCreateDirFailedFmt, ErrTargetUnavailable, inst.target, err)
	}
	return nil
}

func (inst *installer) reconcile(payload agents.Payload) error {
	dest := filepath.Join(inst.target, payload.File)
	if !inst.force {
		exists, err := inst.exists(dest)
		if err != nil {
			return err
		}
		if exists {
			inst.record(payload.File, OutcomeSkipped)
			return nil
		}
	}
	if err := inst.copy(payload, dest); err != nil {
		return err
	}
	inst.record(payload.File, OutcomeCopied)
	return nil
}

// exists reports whether anything occupies dest. Symlinks count as present.
func (inst *installer) exists(dest string) (bool, error) {
	_, err := inst.sys.Lstat(dest)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: "+messages.InstallFailedStatFmt, ErrTargetUnavailable, dest, err)
}

func (inst *installer) copy(payload agents.Payload, dest string) error {
	data, err := fs.ReadFile(inst.source, payload.File)
	if err != nil {
		return fmt.Errorf("%w: "+messages.InstallFailedReadFmt, ErrSourceUnreadable, payload.File, err)
	}
	if err := inst.sys.WriteFileAtomic(dest, data, filePerm); err != nil {
		return fmt.Errorf("%w: "+messages.InstallFailedWriteFmt, ErrTargetUnavailable, dest, err)
	}
	return nil
}

func (inst *installer) record(file string, outcome Outcome) {
	inst.result.Items = append(inst.result.Items, ItemResult{File: file, Outcome: outcome})
	switch outcome {
	case OutcomeCopied:
		inst.result.Copied++
	case OutcomeSkipped:
		inst.result.Skipped++
	}
}
