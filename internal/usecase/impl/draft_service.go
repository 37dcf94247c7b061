package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/lifecycle"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"
	"portal/internal/usecase/draft"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minSweepInterval = time.Second

// draftService implements the DraftUsecase interface.
type draftService struct {
	records   repository.RoleRecordRepository
	assets    service.AssetStorage
	registry  *draft.Registry
	publisher service.EventPublisher
	opts      draft.Options
	now       service.Clock
	logger    *slog.Logger
}

// DraftServiceParams holds dependencies for DraftService, injected by Fx.
type DraftServiceParams struct {
	fx.In

	Lifecycle fx.Lifecycle `optional:"true"`
	Records   repository.RoleRecordRepository
	Assets    service.AssetStorage
	Registry  *draft.Registry
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
	Clock     service.Clock `optional:"true"`
}

// NewDraftRegistry creates the in-memory session registry.
func NewDraftRegistry(cfg *config.Config) *draft.Registry {
	return draft.NewRegistry(cfg.Draft.SessionTTL, nil)
}

// NewDraftService is the constructor for draftService. With a lifecycle it also
// runs the janitor that expires idle sessions.
func NewDraftService(params DraftServiceParams) usecase.DraftUsecase {
	srv := &draftService{
		records:   params.Records,
		assets:    params.Assets,
		registry:  params.Registry,
		publisher: params.Publisher,
		now:       params.Clock,
		logger:    params.Logger,
	}
	if srv.now == nil {
		srv.now = service.SystemClock
	}
	if cfg := params.Config; cfg != nil {
		if cfg.Draft != nil {
			srv.opts.SubjectOptions = cfg.Draft.SubjectOptions
			srv.opts.OptimisticConcurrency = cfg.Draft.OptimisticConcurrency
		}
		if cfg.Storage != nil {
			srv.opts.MaxAssetBytes = cfg.Storage.MaxAssetBytes
			srv.opts.AllowedContentTypes = cfg.Storage.AllowedContentTypes
		}
	}

	if params.Lifecycle != nil && params.Config != nil && params.Config.Draft != nil {
		srv.registerJanitor(params.Lifecycle, params.Config.Draft.SessionTTL)
	}

	return srv
}

func (srv *draftService) registerJanitor(lc fx.Lifecycle, ttl time.Duration) {
	interval := max(ttl/2, minSweepInterval)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				srv.registry.Run(ctx, interval)
			}()
			srv.logger.Info("Draft session janitor started", slog.Duration("interval", interval))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			stopCtx, stop := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer stop()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})
}

func (srv *draftService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open starts a draft pre-populated from the caller's stored student record.
func (srv *draftService) Open(ctx context.Context, identity entity.Identity) (*usecase.DraftView, error) {
	if identity.IsZero() {
		return nil, domainerrors.ErrInvalidInput
	}

	record, err := srv.records.Find(ctx, entity.RoleStudent, identity)
	if err != nil && !errors.Is(err, domainerrors.ErrRecordNotFound) {
		srv.log(ctx).Error("Failed to load record for draft", slog.String("identity", identity.String()), slog.Any("error", err))

		return nil, domainerrors.ErrLookupFailed.WithCause(err)
	}

	opts := srv.opts
	opts.Identity = identity
	opts.Record = record
	opts.Records = srv.records
	opts.Assets = srv.assets

	ctrl := draft.New(opts)
	id := srv.registry.Open(ctrl)
	srv.log(ctx).Debug("Draft opened", slog.String("draft_id", id), slog.Bool("prefilled", record != nil))

	return viewOf(id, ctrl), nil
}

// Get returns the session state.
func (srv *draftService) Get(ctx context.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
	return srv.apply(ctx, identity, id, func(*draft.Controller) error { return nil })
}

// SetField updates one field.
func (srv *draftService) SetField(ctx context.Context, identity entity.Identity, id, name, value string) (*usecase.DraftView, error) {
	return srv.apply(ctx, identity, id, func(c *draft.Controller) error {
		return c.SetField(name, value)
	})
}

// ToggleSubject checks or unchecks one subject.
func (srv *draftService) ToggleSubject(ctx context.Context, identity entity.Identity, id, subject string, checked bool) (*usecase.DraftView, error) {
	return srv.apply(ctx, identity, id, func(c *draft.Controller) error {
		return c.ToggleSubject(subject, checked)
	})
}

// SelectAsset picks the photo uploaded at submit.
func (srv *draftService) SelectAsset(ctx context.Context, identity entity.Identity, id string, asset entity.Asset) (*usecase.DraftView, error) {
	return srv.apply(ctx, identity, id, func(c *draft.Controller) error {
		return c.SelectAsset(asset)
	})
}

// Next moves to the following step.
func (srv *draftService) Next(ctx context.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
	return srv.apply(ctx, identity, id, func(c *draft.Controller) error {
		return c.Next()
	})
}

// Back moves to the previous step.
func (srv *draftService) Back(ctx context.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
	return srv.apply(ctx, identity, id, func(c *draft.Controller) error {
		return c.Back()
	})
}

// Submit commits the draft and announces the change.
func (srv *draftService) Submit(ctx context.Context, identity entity.Identity, id string) (*usecase.DraftView, error) {
	view, err := srv.apply(ctx, identity, id, func(c *draft.Controller) error {
		if err := c.Submit(ctx); err != nil {
			srv.log(ctx).Warn("Draft submit failed", slog.String("draft_id", id), slog.Any("error", err))

			return err
		}

		publishBestEffort(ctx, srv.publisher, srv.log(ctx), &entity.DomainEvent{
			Type:       entity.EventProfileSubmitted,
			Identity:   identity,
			Role:       entity.RoleStudent,
			OccurredAt: srv.now(),
			Fields:     fieldNames(c.Written()),
		})

		return nil
	})
	if err != nil {
		return view, err
	}

	srv.log(ctx).Info("Profile submitted", slog.String("draft_id", id), slog.String("identity", identity.String()))

	return view, nil
}

// Discard drops the session without writing anything.
func (srv *draftService) Discard(_ context.Context, identity entity.Identity, id string) error {
	if !srv.registry.Close(id, identity) {
		return domainerrors.ErrDraftNotFound
	}

	return nil
}

// apply runs op under the session lock and returns the state afterwards, also when op fails.
func (srv *draftService) apply(_ context.Context, identity entity.Identity, id string, op func(*draft.Controller) error) (*usecase.DraftView, error) {
	var (
		view  *usecase.DraftView
		opErr error
	)

	err := srv.registry.With(id, identity, func(c *draft.Controller) error {
		opErr = op(c)
		view = viewOf(id, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, opErr
}

func viewOf(id string, c *draft.Controller) *usecase.DraftView {
	status := c.Status()
	view := &usecase.DraftView{
		ID:             id,
		Step:           c.Step(),
		Status:         status.Phase.String(),
		Reason:         status.Reason,
		Draft:          c.Draft(),
		Version:        c.Version(),
		SubjectOptions: c.SubjectOptions(),
		RequiredFields: draft.RequiredFields(c.Step()),
	}
	if asset, ok := c.Asset(); ok {
		view.AssetName = asset.Filename
	}

	return view
}

func fieldNames(fields entity.Fields) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
