package application

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/xthreads-cli/internal/domain"
	"github.com/bnema/xthreads-cli/internal/ports"
	"github.com/rs/zerolog"
)

var mediaReference = regexp.MustCompile(`!?\[\[([^\[\]]+?)\.(gif|jpg|jpeg|tiff|tif|png|webp|bmp)\]\]`)

var mediaTypes = map[string]string{
	"gif":  "image/gif",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"png":  "image/png",
	"webp": "image/webp",
	"bmp":  "image/bmp",
}

type MediaResolver struct {
	files   ports.FileStore
	metrics ports.PostingMetrics
	log     zerolog.Logger
}

func NewMediaResolver(files ports.FileStore, metrics ports.PostingMetrics, log zerolog.Logger) *MediaResolver {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &MediaResolver{
		files:   files,
		metrics: metrics,
		log:     log.With().Str("component", "media").Logger(),
	}
}

// Resolve uploads every inline media reference in text through session and
// strips the references. References that cannot be uploaded are stripped as
// well and reported as warnings.
func (r *MediaResolver) Resolve(ctx context.Context, session ports.PostingSession, text string) (ResolvedSegment, error) {
	resolved := ResolvedSegment{}
	remaining := text

	for {
		loc := mediaReference.FindStringSubmatchIndex(remaining)
		if loc == nil {
			break
		}
		if err := ctx.Err(); err != nil {
			return ResolvedSegment{}, err
		}

		reference := remaining[loc[0]:loc[1]]
		ext := remaining[loc[4]:loc[5]]
		name := remaining[loc[2]:loc[3]] + "." + ext
		remaining = remaining[:loc[0]] + remaining[loc[1]:]

		id, err := r.upload(ctx, session, name, ext)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return ResolvedSegment{}, err
			}
			warning := domain.UploadWarning{Reference: reference, Reason: err.Error()}
			resolved.Warnings = append(resolved.Warnings, warning)
			r.metrics.RecordUpload(false)
			r.log.Warn().Str("reference", reference).Str("reason", warning.Reason).Msg("Media attachment dropped")
			continue
		}

		r.metrics.RecordUpload(true)
		resolved.MediaIDs = append(resolved.MediaIDs, id)
	}

	resolved.Text = strings.TrimSpace(remaining)
	return resolved, nil
}

func (r *MediaResolver) upload(ctx context.Context, session ports.PostingSession, name, ext string) (string, error) {
	ref, err := r.files.ResolveName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}

	data, err := r.files.ReadBinary(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", ref, err)
	}

	id, err := session.UploadMedia(ctx, data, mediaTypes[ext])
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	if id == "" {
		return "", fmt.Errorf("upload %s: service returned no media id", name)
	}

	return id, nil
}
