// Package generator orchestrates the landing-page pipeline: background
// resolution, prompt construction, the model attempt with its deterministic
// fallback, and idempotent persistence of the final document.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/prosport1/ProSport/internal/background"
	"github.com/prosport1/ProSport/internal/domain"
	"github.com/prosport1/ProSport/internal/prompt"
	"github.com/prosport1/ProSport/internal/render"
	"github.com/prosport1/ProSport/internal/storage"
	"github.com/prosport1/ProSport/internal/style"
	"github.com/prosport1/ProSport/internal/util"
	perrors "github.com/prosport1/ProSport/pkg/errors"
)

// ModelGeneratedMarker is reported as backgroundUsed when no explicit or cached
// background was available and the model composed its own.
const ModelGeneratedMarker = "(model-generated)"

const variantSpace = 1_000_000

// ArtifactRecorder persists artifact metadata. Recording is best-effort; a
// failure never fails the request.
type ArtifactRecorder interface {
	Record(ctx context.Context, artifact *domain.Artifact) error
}

type Orchestrator struct {
	styles      *style.Engine
	backgrounds *background.Cache
	model       HTMLModel
	store       storage.Store
	recorder    ArtifactRecorder
	variants    func() int
	logger      *zap.Logger
}

type Options struct {
	Styles      *style.Engine
	Backgrounds *background.Cache
	Model       HTMLModel        // nil when no model credential is configured
	Store       storage.Store
	Recorder    ArtifactRecorder // optional
	Variants    func() int       // optional; defaults to a time-seeded source
	Logger      *zap.Logger
}

func New(opts Options) *Orchestrator {
	variants := opts.Variants
	if variants == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		variants = func() int { return rng.Intn(variantSpace) }
	}
	styles := opts.Styles
	if styles == nil {
		styles = style.NewEngine(nil)
	}

	return &Orchestrator{
		styles:      styles,
		backgrounds: opts.Backgrounds,
		model:       opts.Model,
		store:       opts.Store,
		recorder:    opts.Recorder,
		variants:    variants,
		logger:      opts.Logger,
	}
}

// Generate runs the full pipeline for a validated profile. Model and background
// failures degrade locally; only a failed artifact write returns an error.
func (o *Orchestrator) Generate(ctx context.Context, p *domain.AthleteProfile) (*domain.GenerationResult, error) {
	data := *p

	// Background resolution and style derivation have no data dependency on
	// each other; run both before prompts are assembled.
	var styleText string
	bgURL := data.BackgroundImageURL
	tasks := pool.New().WithMaxGoroutines(2)
	tasks.Go(func() {
		if strings.TrimSpace(data.StyleHint) == "" {
			styleText = o.styles.Derive(data.Sport).PromptText()
		}
	})
	tasks.Go(func() {
		// An explicit background URL always wins over the cache.
		if bgURL == "" && o.backgrounds != nil {
			bgURL = o.backgrounds.Ensure(ctx, data.Sport)
		}
	})
	tasks.Wait()
	data.BackgroundImageURL = bgURL

	variant := o.variants()
	prompts := prompt.Build(&data, styleText, variant)

	html, usedFallback := o.produceHTML(ctx, &data, prompts)

	id := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), util.Slugify(data.Name))
	path := fmt.Sprintf("landingpages/%s/%s.html", data.Tier, id)

	if err := o.store.Save(ctx, path, []byte(html), storage.SaveOptions{
		ContentType: "text/html; charset=utf-8",
	}); err != nil {
		o.logger.Error("Artifact write failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, perrors.NewPersistenceError("failed to store landing page", path, err)
	}
	if err := o.store.MakePublic(ctx, path); err != nil {
		o.logger.Error("Artifact publish failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, perrors.NewPersistenceError("failed to publish landing page", path, err)
	}

	publicURL := o.store.PublicURL(path)

	backgroundUsed := data.BackgroundImageURL
	if backgroundUsed == "" {
		backgroundUsed = ModelGeneratedMarker
	}

	if o.recorder != nil {
		artifact := &domain.Artifact{
			ID:           id,
			Tier:         data.Tier,
			Sport:        data.Sport,
			AthleteName:  data.Name,
			StoragePath:  path,
			PublicURL:    publicURL,
			UsedFallback: usedFallback,
			VariantID:    variant,
			CreatedAt:    time.Now().UTC(),
		}
		if err := o.recorder.Record(ctx, artifact); err != nil {
			o.logger.Warn("Artifact history record failed",
				zap.String("id", id),
				zap.Error(err),
			)
		}
	}

	o.logger.Info("Landing page generated",
		zap.String("id", id),
		zap.String("tier", string(data.Tier)),
		zap.Bool("used_fallback", usedFallback),
		zap.Int("variant", variant),
	)

	return &domain.GenerationResult{
		OK:             true,
		URL:            publicURL,
		ID:             id,
		Tier:           data.Tier,
		UsedFallback:   usedFallback,
		VariantID:      variant,
		BackgroundUsed: backgroundUsed,
	}, nil
}

// produceHTML attempts the model path and falls back to the deterministic
// renderer on any failure. It never returns an error: the fallback always
// yields a usable document.
func (o *Orchestrator) produceHTML(ctx context.Context, data *domain.AthleteProfile, prompts prompt.Prompts) (string, bool) {
	if o.model == nil {
		o.logger.Warn("Model credential not configured, rendering fallback",
			zap.String("tier", string(data.Tier)),
			zap.Error(perrors.NewConfigurationError("model credential not configured", "OPENAI_API_KEY")),
		)
		return render.Fallback(data), true
	}

	raw, err := o.model.GenerateHTML(ctx, prompts.System, prompts.User)
	if err != nil {
		o.logger.Error("Model generation failed, rendering fallback",
			zap.String("tier", string(data.Tier)),
			zap.Error(perrors.NewUpstreamError("model generation failed", "openai", "chat_completion", err)),
		)
		return render.Fallback(data), true
	}

	html, err := extractHTML(raw)
	if err != nil {
		o.logger.Error("Model output rejected, rendering fallback",
			zap.String("tier", string(data.Tier)),
			zap.String("preview", util.TruncateString(raw, 200)),
			zap.Error(perrors.NewUpstreamError("model output rejected", "openai", "chat_completion", err)),
		)
		return render.Fallback(data), true
	}

	return html, false
}
