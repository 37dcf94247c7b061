// Package draft implements the multi-step student profile form.
//
// A Controller owns one ProfileDraft and a step cursor. Fields can be changed at
// any step; moving forward requires the current step's fields to validate, and
// Submit at the last step merges the draft into the stored student record after
// uploading the selected photo, if any. A Controller is not safe for concurrent
// use; callers serialise access per session.
package draft

import (
	"context"
	"slices"
	"strings"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/errors"
)

// Options configures a Controller.
type Options struct {
	Identity entity.Identity
	// Record is the stored student record, nil when none exists yet.
	Record  *entity.RoleRecord
	Records repository.RoleRecordRepository
	Assets  service.AssetStorage

	SubjectOptions      []string
	MaxAssetBytes       int64
	AllowedContentTypes []string
	// OptimisticConcurrency makes Submit fail with ErrVersionConflict when the
	// record changed since it was loaded.
	OptimisticConcurrency bool
}

// Controller is the profile form state machine.
type Controller struct {
	opts    Options
	step    int
	draft   entity.ProfileDraft
	status  Status
	asset   *entity.Asset
	version int64
	written entity.Fields
}

// New opens a draft, pre-populated from opts.Record when present.
func New(opts Options) *Controller {
	c := &Controller{
		opts:   opts,
		step:   FirstStep,
		status: Status{Phase: PhaseEditing},
	}
	if opts.Record != nil {
		c.draft = opts.Record.Profile.Clone()
		if c.draft.Email == "" {
			c.draft.Email = opts.Record.ContactEmail
		}
		if c.draft.StudentID == "" {
			c.draft.StudentID = opts.Record.RoleSpecificID
		}
		c.version = opts.Record.Version
	}

	return c
}

// Identity returns the identity the draft belongs to.
func (c *Controller) Identity() entity.Identity {
	return c.opts.Identity
}

// Step returns the current step, 1 through 4.
func (c *Controller) Step() int {
	return c.step
}

// Draft returns a copy of the current field values.
func (c *Controller) Draft() entity.ProfileDraft {
	return c.draft.Clone()
}

// Status returns the current status signal.
func (c *Controller) Status() Status {
	return c.status
}

// Asset returns the selected, not yet uploaded asset.
func (c *Controller) Asset() (entity.Asset, bool) {
	if c.asset == nil {
		return entity.Asset{}, false
	}

	return *c.asset, true
}

// Version returns the record version the next commit expects.
func (c *Controller) Version() int64 {
	return c.version
}

// Written returns the fields the successful commit merged, nil before that.
func (c *Controller) Written() entity.Fields {
	return c.written
}

// SubjectOptions returns the subjects ToggleSubject accepts.
func (c *Controller) SubjectOptions() []string {
	return slices.Clone(c.opts.SubjectOptions)
}

// SetField updates exactly one named field.
func (c *Controller) SetField(name, value string) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if name == entity.FieldPhotoURL || !c.draft.Set(name, value) {
		return domainerrors.ErrInvalidInput.WithDetails("unknown field: " + name)
	}
	c.edited()

	return nil
}

// ToggleSubject adds subject when checked and removes it otherwise.
func (c *Controller) ToggleSubject(subject string, checked bool) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if strings.TrimSpace(subject) == "" ||
		(len(c.opts.SubjectOptions) > 0 && !slices.Contains(c.opts.SubjectOptions, subject)) {
		return domainerrors.ErrInvalidInput.WithDetails("unknown subject: " + subject)
	}
	c.draft.ToggleSubject(subject, checked)
	c.edited()

	return nil
}

// SelectAsset picks the photo to upload at commit, replacing any earlier pick.
func (c *Controller) SelectAsset(asset entity.Asset) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if strings.TrimSpace(asset.Filename) == "" || asset.Size() == 0 {
		return domainerrors.ErrInvalidInput.WithDetails("file is empty")
	}
	if c.opts.MaxAssetBytes > 0 && asset.Size() > c.opts.MaxAssetBytes {
		return domainerrors.ErrInvalidInput.WithDetails("file is too large")
	}
	if len(c.opts.AllowedContentTypes) > 0 && !slices.Contains(c.opts.AllowedContentTypes, asset.ContentType) {
		return domainerrors.ErrInvalidInput.WithDetails("unsupported file type: " + asset.ContentType)
	}
	c.asset = &asset
	c.edited()

	return nil
}

// Next moves forward one step once the current step validates.
func (c *Controller) Next() error {
	if err := c.mutable(); err != nil {
		return err
	}
	if c.step >= LastStep {
		return domainerrors.ErrInvalidTransition.WithDetails("already at the last step")
	}
	if err := validateStep(&c.draft, c.step); err != nil {
		return err
	}
	c.step++

	return nil
}

// Back moves back one step.
func (c *Controller) Back() error {
	if err := c.mutable(); err != nil {
		return err
	}
	if c.step <= FirstStep {
		return domainerrors.ErrInvalidTransition.WithDetails("already at the first step")
	}
	c.step--

	return nil
}

// Submit commits the draft. It is only accepted at the last step once every
// earlier step validates. On failure the draft stays at the last step with a
// Failed status and can be submitted again.
func (c *Controller) Submit(ctx context.Context) error {
	if err := c.mutable(); err != nil {
		return err
	}
	if c.step != LastStep {
		return domainerrors.ErrInvalidTransition.WithDetails("submit is only allowed at the last step")
	}
	if err := validateThrough(&c.draft, LastStep-1); err != nil {
		return err
	}

	c.status = Status{Phase: PhaseSubmitting}

	if err := c.uploadAsset(ctx); err != nil {
		return c.fail(err)
	}

	fields := c.draft.PresentFields()
	fields[entity.FieldFullName] = c.draft.FullName()
	if c.draft.PhotoURL != "" {
		fields[entity.FieldPhotoURL] = c.draft.PhotoURL
	}
	fields[entity.FieldUpdatedAt] = entity.ServerTime

	version, err := c.opts.Records.Merge(ctx, entity.RoleStudent, c.opts.Identity, fields, repository.MergeOptions{
		CheckVersion:    c.opts.OptimisticConcurrency,
		ExpectedVersion: c.version,
	})
	if err != nil {
		return c.fail(err)
	}

	c.version = version
	c.written = fields
	c.status = Status{Phase: PhaseSubmitted}

	return nil
}

// uploadAsset uploads the selected asset and records its retrieval reference in
// the draft. A retried commit does not upload the same asset twice.
func (c *Controller) uploadAsset(ctx context.Context) error {
	if c.asset == nil {
		return nil
	}

	key := entity.StudentAssetKey(c.opts.Identity, c.asset.Filename)
	if err := c.opts.Assets.Upload(ctx, key, *c.asset); err != nil {
		return ensureKind(err, domainerrors.ErrUploadFailed)
	}

	url, err := c.opts.Assets.RetrievalURL(ctx, key)
	if err != nil {
		return ensureKind(err, domainerrors.ErrUploadFailed)
	}

	c.draft.Set(entity.FieldPhotoURL, url)
	c.asset = nil

	return nil
}

func (c *Controller) fail(cause error) error {
	reason := "submission failed"
	if appErr, ok := errors.AsType[domainerrors.AppError](cause); ok {
		reason = appErr.Message()
	}
	c.status = Status{Phase: PhaseFailed, Reason: reason}

	return domainerrors.ErrPersistenceFailed.WithCause(cause)
}

func (c *Controller) mutable() error {
	switch c.status.Phase {
	case PhaseSubmitted:
		return domainerrors.ErrDraftSubmitted
	case PhaseSubmitting:
		return domainerrors.ErrInvalidTransition.WithDetails("a submission is in progress")
	default:
		return nil
	}
}

// edited clears a failure once the user changes something.
func (c *Controller) edited() {
	if c.status.Phase == PhaseFailed {
		c.status = Status{Phase: PhaseEditing}
	}
}

// ensureKind keeps collaborator errors that already carry a domain kind and
// tags the rest with kind.
func ensureKind(err error, kind *domainerrors.BaseError) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return kind.WithCause(err)
}
