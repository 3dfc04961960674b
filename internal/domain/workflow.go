package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/mouse-blink/marks/internal/adapter"
	"github.com/mouse-blink/marks/internal/controller"
	"github.com/mouse-blink/marks/internal/log"
	m "github.com/mouse-blink/marks/internal/model"
)

// PrintArgs contains the arguments for printing a marked source file.
type PrintArgs struct {
	Path m.Path
}

// EditArgs contains the arguments for editing a spec in the external editor.
type EditArgs struct {
	Path m.Path
}

// ViewArgs contains the arguments for an interactive review session.
type ViewArgs struct {
	Path m.Path
}

// StatusArgs contains the arguments for reporting review coverage.
type StatusArgs struct {
	Paths            []m.Path
	RespectGitignore bool
}

// SpecPathArgs contains the arguments for locating a spec file.
type SpecPathArgs struct {
	Path m.Path
}

// Workflow defines the marks use cases driven by the CLI.
type Workflow interface {
	Print(args PrintArgs) error
	Edit(args EditArgs) error
	View(args ViewArgs) error
	Status(ctx context.Context, args StatusArgs) error
	SpecPath(args SpecPathArgs) error
}

type workflow struct {
	store     adapter.SpecStore
	specs     *specRepository
	fsAdapter adapter.SourceFSAdapter
	editor    adapter.EditorAdapter
	ui        controller.UI
	logger    *log.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	store adapter.SpecStore,
	fsAdapter adapter.SourceFSAdapter,
	editor adapter.EditorAdapter,
	ui controller.UI,
	logger *log.Logger,
) Workflow {
	return &workflow{
		store:     store,
		specs:     newSpecRepository(store),
		fsAdapter: fsAdapter,
		editor:    editor,
		ui:        ui,
		logger:    logger,
	}
}

// Print renders the source file with its marked lines highlighted.
func (w *workflow) Print(args PrintArgs) error {
	spec, err := w.specs.Load(args.Path)
	if err != nil {
		return err
	}

	lines, err := w.fsAdapter.ReadLines(args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	annotated, err := m.Annotate(lines, spec)
	if err != nil {
		return fmt.Errorf("%s: %w", args.Path, err)
	}

	return w.ui.DisplaySource(args.Path, annotated)
}

// Edit hands a temporary copy of the spec to the editor and saves the
// canonicalized result. If the edited text does not parse, nothing is saved
// and the temporary copy is kept so the user can recover it.
func (w *workflow) Edit(args EditArgs) error {
	if err := w.editor.Available(); err != nil {
		return err
	}

	logger := w.logger.With("source", args.Path)

	_, data, err := w.specs.LoadRaw(args.Path)
	if err != nil {
		return err
	}

	content := append([]byte(fmt.Sprintf("# marks for %s\n", args.Path)), data...)

	tmp, err := w.fsAdapter.CreateTemp("marks-*.spec", content)
	if err != nil {
		return fmt.Errorf("create temp spec: %w", err)
	}

	logger.Info("launching editor", "file", tmp)

	if err := w.editor.Edit(tmp); err != nil {
		return fmt.Errorf("%w (edited copy kept at %s)", err, tmp)
	}

	edited, err := w.fsAdapter.ReadFile(tmp)
	if err != nil {
		return fmt.Errorf("read edited spec %s: %w", tmp, err)
	}

	spec, err := ParseSpec(bytes.NewReader(edited))
	if err != nil {
		return fmt.Errorf("%w (edited copy kept at %s)", err, tmp)
	}

	if err := w.specs.Save(args.Path, spec); err != nil {
		return err
	}

	if err := w.fsAdapter.Remove(tmp); err != nil {
		logger.Warn("failed to remove temp spec", "file", tmp, "error", err)
	}

	return nil
}

// View runs an interactive review session and saves the spec unless the
// user discarded the session.
func (w *workflow) View(args ViewArgs) error {
	spec, err := w.specs.Load(args.Path)
	if err != nil {
		return err
	}

	lines, err := w.fsAdapter.ReadLines(args.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Path, err)
	}

	if len(lines) > int(m.MaxLineOffset)+1 {
		return fmt.Errorf("%s: %w", args.Path, m.ErrTooManyLines)
	}

	result, err := w.ui.Review(controller.ReviewSession{
		Path:  args.Path,
		Lines: lines,
		Spec:  spec,
	})
	if err != nil {
		return err
	}

	if !result.Save {
		w.logger.With("source", args.Path).Debug("review discarded")
		return nil
	}

	return w.specs.Save(args.Path, result.Spec)
}

// Status aggregates marked/total counts per argument and displays them.
func (w *workflow) Status(ctx context.Context, args StatusArgs) error {
	if len(args.Paths) == 0 {
		return errors.New("status: no paths given")
	}

	var opts []StatusOption
	if args.RespectGitignore {
		opts = append(opts, WithGitignore())
	}

	statuses, err := NewStatusAggregator(w.store, w.fsAdapter, opts...).Status(ctx, args.Paths...)
	if err != nil {
		return err
	}

	return w.ui.DisplayStatus(statuses)
}

// SpecPath displays where the spec of a source file is stored.
func (w *workflow) SpecPath(args SpecPathArgs) error {
	specPath, err := w.store.Locate(args.Path)
	if err != nil {
		return err
	}

	return w.ui.DisplaySpecPath(args.Path, specPath)
}
