// Package themesvc is the import/export surface over the theme codecs. It
// dispatches on format, gates every import through validation, and turns
// unexpected faults into parse errors instead of crashes.
package themesvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/unkn0wn-root/themekit/internal/errdef"
	"github.com/unkn0wn-root/themekit/internal/jsoncodec"
	"github.com/unkn0wn-root/themekit/internal/source"
	"github.com/unkn0wn-root/themekit/internal/telemetry"
	"github.com/unkn0wn-root/themekit/internal/theme"
)

type Service struct {
	logger    zerolog.Logger
	tel       telemetry.Instrumenter
	namespace string
	now       func() time.Time
}

type Option func(*Service)

func WithTelemetry(inst telemetry.Instrumenter) Option {
	return func(s *Service) {
		if inst != nil {
			s.tel = inst
		}
	}
}

// WithNamespace sets the namespace of generated source.
func WithNamespace(ns string) Option {
	return func(s *Service) {
		s.namespace = strings.TrimSpace(ns)
	}
}

// WithTimestamps stamps generated source with now(). Without it source
// export is byte-for-byte deterministic.
func WithTimestamps(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		logger: logger.With().Str("component", "themesvc").Logger(),
		tel:    telemetry.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Import decodes text in the given format and validates the result. The
// returned document is never partially valid.
func (s *Service) Import(ctx context.Context, format Format, text string) (doc *theme.Document, err error) {
	_, span := s.tel.Start(ctx, telemetry.OperationStart{Op: "import", Format: string(format), Size: len(text)})
	defer func() { span.End(telemetry.OperationResult{Err: err}) }()
	defer s.guard("import", &err)

	if strings.TrimSpace(text) == "" {
		return nil, errdef.New(errdef.CodeInvalidFormat, "import text is empty")
	}
	doc, err = decode(format, text)
	if err != nil {
		s.logger.Warn().Str("format", string(format)).Err(err).Msg("import decode failed")
		return nil, err
	}
	if err = theme.Validate(doc); err != nil {
		s.logger.Warn().
			Str("format", string(format)).
			Str("field", errdef.FieldOf(err)).
			Err(err).
			Msg("import rejected")
		return nil, err
	}
	s.logger.Info().Str("format", string(format)).Int("bytes", len(text)).Msg("theme imported")
	return doc, nil
}

// ImportCollection reads a multi-theme JSON envelope. Invalid entries are
// skipped and reported on the result.
func (s *Service) ImportCollection(ctx context.Context, text string) (env jsoncodec.Envelope, err error) {
	_, span := s.tel.Start(ctx, telemetry.OperationStart{Op: "import_collection", Format: string(FormatJSON), Size: len(text)})
	defer func() {
		span.End(telemetry.OperationResult{Err: err, Accepted: len(env.Themes), Skipped: env.Skipped})
	}()
	defer s.guard("import_collection", &err)

	if strings.TrimSpace(text) == "" {
		return jsoncodec.Envelope{}, errdef.New(errdef.CodeInvalidFormat, "import text is empty")
	}
	env, err = jsoncodec.DecodeEnvelope(text)
	for _, name := range env.Skipped {
		s.logger.Warn().
			Str("theme", name).
			Str("field", errdef.FieldOf(env.Problems[name])).
			Err(env.Problems[name]).
			Msg("theme skipped")
	}
	if err != nil {
		return env, err
	}
	s.logger.Info().
		Int("accepted", len(env.Themes)).
		Int("skipped", len(env.Skipped)).
		Msg(env.Summary())
	return env, nil
}

// Export validates doc and renders it. Source export needs a name.
func (s *Service) Export(ctx context.Context, format Format, doc *theme.Document, name string) (out string, err error) {
	_, span := s.tel.Start(ctx, telemetry.OperationStart{Op: "export", Format: string(format), Theme: name})
	defer func() { span.End(telemetry.OperationResult{Err: err, Output: len(out)}) }()
	defer s.guard("export", &err)

	if err = theme.Validate(doc); err != nil {
		s.logger.Warn().Str("theme", name).Str("field", errdef.FieldOf(err)).Err(err).Msg("export rejected")
		return "", err
	}
	opts := source.Options{Namespace: s.namespace}
	if s.now != nil {
		opts.GeneratedAt = s.now()
	}
	out, err = encode(format, doc, name, opts)
	if err != nil {
		return "", err
	}
	s.logger.Info().
		Str("format", string(format)).
		Str("theme", name).
		Int("bytes", len(out)).
		Msg("theme exported")
	return out, nil
}

// ExportCollection writes docs as a JSON envelope. Every entry must be valid.
func (s *Service) ExportCollection(ctx context.Context, docs map[string]*theme.Document) (out string, err error) {
	_, span := s.tel.Start(ctx, telemetry.OperationStart{Op: "export_collection", Format: string(FormatJSON)})
	defer func() { span.End(telemetry.OperationResult{Err: err, Output: len(out), Accepted: len(docs)}) }()
	defer s.guard("export_collection", &err)

	for name, doc := range docs {
		if err = theme.Validate(doc); err != nil {
			return "", errdef.Wrap(errdef.CodeOf(err), err, "theme %q", name)
		}
	}
	out, err = jsoncodec.EncodeEnvelope(docs)
	if err != nil {
		return "", err
	}
	s.logger.Info().Int("themes", len(docs)).Int("bytes", len(out)).Msg("collection exported")
	return out, nil
}

func (s *Service) Validate(doc *theme.Document) error {
	return theme.Validate(doc)
}

// guard converts a panic in the calling operation into a CodeParse error.
func (s *Service) guard(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	*err = errdef.Wrap(errdef.CodeParse, fmt.Errorf("%v", r), "%s failed unexpectedly", op)
	s.logger.Error().Str("op", op).Interface("panic", r).Msg("recovered from fault")
}
