package workspace

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formbuilder/pkg/catalog"
	"github.com/goliatone/go-formbuilder/pkg/dnd"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/canvas"
	"github.com/goliatone/go-formbuilder/pkg/renderers/preview"
)

// DefaultSeed returns the elements a new canvas starts with.
func DefaultSeed() []model.PlacedElement {
	return []model.PlacedElement{
		{ID: "1", Type: model.TypeText, Label: "Name", Placeholder: "Enter your name", Required: true},
		{ID: "2", Type: model.TypeEmail, Label: "Email", Placeholder: "Enter your email", Required: true},
		{ID: "3", Type: model.TypeSelect, Label: "Country", Options: []string{"United States", "Canada", "United Kingdom"}},
	}
}

// Option customises the workspace.
type Option func(*config)

type config struct {
	catalog        *catalog.Catalog
	seed           []model.PlacedElement
	seeded         bool
	ids            layout.IDGenerator
	policy         dnd.InsertPolicy
	logger         *zap.Logger
	canvasOptions  []canvas.Option
	previewOptions []preview.Option
}

// WithCatalog replaces the embedded element catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.catalog = c
		}
	}
}

// WithSeed replaces the default starting elements.
func WithSeed(elements ...model.PlacedElement) Option {
	return func(cfg *config) {
		cfg.seed = elements
		cfg.seeded = true
	}
}

// WithEmptyCanvas starts with no elements.
func WithEmptyCanvas() Option {
	return WithSeed()
}

// WithIDGenerator overrides how new element ids are minted.
func WithIDGenerator(gen layout.IDGenerator) Option {
	return func(cfg *config) {
		if gen != nil {
			cfg.ids = gen
		}
	}
}

// WithInsertPolicy selects where dropped templates land.
func WithInsertPolicy(policy dnd.InsertPolicy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

// WithLogger sets the logger shared by the coordinator and the workspace.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithCanvasOptions forwards options to the canvas view.
func WithCanvasOptions(options ...canvas.Option) Option {
	return func(cfg *config) {
		cfg.canvasOptions = append(cfg.canvasOptions, options...)
	}
}

// WithPreviewOptions forwards options to the preview view.
func WithPreviewOptions(options ...preview.Option) Option {
	return func(cfg *config) {
		cfg.previewOptions = append(cfg.previewOptions, options...)
	}
}

// Frame is one consistent rendering of the session.
type Frame struct {
	Version uint64
	Canvas  string
	Preview preview.Form
}

// Workspace owns one builder session. It is driven from a single goroutine.
type Workspace struct {
	catalog     *catalog.Catalog
	store       *layout.Store
	coord       *dnd.Coordinator
	canvas      *canvas.View
	preview     *preview.View
	renderers   *render.Registry
	logger      *zap.Logger
	latest      model.Snapshot
	unsubscribe func()
}

// New builds a workspace.
func New(options ...Option) (*Workspace, error) {
	cfg := config{
		logger: zap.NewNop(),
		ids:    layout.NewSequence(""),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.catalog == nil {
		cfg.catalog = catalog.Default()
	}
	if !cfg.seeded {
		cfg.seed = DefaultSeed()
	}

	store, err := layout.NewStore(
		layout.WithElements(cfg.seed...),
		layout.WithIDGenerator(cfg.ids),
	)
	if err != nil {
		return nil, fmt.Errorf("workspace: seed store: %w", err)
	}

	pv, err := preview.New(cfg.previewOptions...)
	if err != nil {
		return nil, fmt.Errorf("workspace: preview: %w", err)
	}
	renderers := render.NewRegistry()
	if err := pv.Register(renderers); err != nil {
		return nil, fmt.Errorf("workspace: register preview formats: %w", err)
	}

	w := &Workspace{
		catalog:   cfg.catalog,
		store:     store,
		preview:   pv,
		renderers: renderers,
		logger:    cfg.logger,
		latest:    store.Snapshot(),
	}
	w.coord = dnd.New(store,
		dnd.WithLogger(cfg.logger),
		dnd.WithInsertPolicy(cfg.policy),
		dnd.WithObserver(w.observe),
	)
	w.canvas = canvas.New(w.coord, cfg.canvasOptions...)
	w.canvas.Render(w.latest)
	w.unsubscribe = store.Subscribe(w.onSnapshot)
	return w, nil
}

// Close detaches the workspace and its coordinator from the store.
func (w *Workspace) Close() {
	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
	w.coord.Close()
}

// Catalog returns the palette catalog.
func (w *Workspace) Catalog() *catalog.Catalog { return w.catalog }

// Store returns the layout store.
func (w *Workspace) Store() *layout.Store { return w.store }

// Coordinator returns the drag coordinator.
func (w *Workspace) Coordinator() *dnd.Coordinator { return w.coord }

// Canvas returns the canvas view.
func (w *Workspace) Canvas() *canvas.View { return w.canvas }

// Preview returns the preview view.
func (w *Workspace) Preview() *preview.View { return w.preview }

// Snapshot returns the last published snapshot.
func (w *Workspace) Snapshot() model.Snapshot { return w.latest }

// OnChange registers fn for every published snapshot, after both views have
// observed it.
func (w *Workspace) OnChange(fn func(model.Snapshot)) (unsubscribe func()) {
	return w.store.Subscribe(fn)
}

// Frame renders both views from the last published snapshot.
func (w *Workspace) Frame() Frame {
	snap := w.latest
	return Frame{
		Version: snap.Version(),
		Canvas:  w.canvas.Render(snap),
		Preview: w.preview.Project(snap),
	}
}

// Renderers returns the registry of preview output formats.
func (w *Workspace) Renderers() *render.Registry { return w.renderers }

// Render renders the last published snapshot in the named format.
func (w *Workspace) Render(ctx context.Context, format string, options render.RenderOptions) ([]byte, error) {
	r, err := w.renderers.Get(format)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, w.latest, options)
}

// PreviewHTML renders the last published snapshot as HTML.
func (w *Workspace) PreviewHTML() ([]byte, error) {
	return w.preview.HTML(w.latest)
}

// PreviewMarkdown renders the last published snapshot as Markdown.
func (w *Workspace) PreviewMarkdown() string {
	return w.preview.Markdown(w.latest)
}

// PreviewTerminal renders the last published snapshot for a terminal.
func (w *Workspace) PreviewTerminal(width int) (string, error) {
	return w.preview.Terminal(w.latest, width)
}

// AddElement inserts the catalog template typ at index through a complete
// drag gesture. A negative index appends.
func (w *Workspace) AddElement(typ string, index int) (model.PlacedElement, error) {
	tmpl, err := w.catalog.Get(typ)
	if err != nil {
		return model.PlacedElement{}, err
	}
	if err := w.canvas.DragTemplate(tmpl); err != nil {
		return model.PlacedElement{}, err
	}
	if index < 0 || index >= w.latest.Len() {
		err = w.canvas.HoverEmpty()
	} else {
		err = w.canvas.HoverSlot(index)
	}
	if err != nil {
		return model.PlacedElement{}, err
	}
	el, _, err := w.canvas.Release()
	return el, err
}

// MoveElement reorders the element at from to to through a complete drag
// gesture.
func (w *Workspace) MoveElement(from, to int) error {
	if err := w.canvas.Grab(from); err != nil {
		return err
	}
	if err := w.canvas.HoverSlot(to); err != nil {
		return err
	}
	_, _, err := w.canvas.Release()
	return err
}

func (w *Workspace) onSnapshot(snap model.Snapshot) {
	w.latest = snap
	w.canvas.Render(snap)
}

func (w *Workspace) observe(evt dnd.Event) {
	fields := []zap.Field{
		zap.Stringer("event", evt.Kind),
		zap.Stringer("source", evt.Gesture.Kind),
		zap.Uint64("version", w.store.Version()),
	}
	if evt.Inserted != nil {
		fields = append(fields, zap.String("element", evt.Inserted.ID))
	}
	if evt.Err != nil {
		fields = append(fields, zap.Error(evt.Err))
	}
	w.logger.Debug("workspace: gesture", fields...)
}
