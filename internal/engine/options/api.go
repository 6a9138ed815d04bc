package options

import (
	"strings"

	"go.trai.ch/nativeimage/internal/core/domain"
)

// apiOption maps flag to a builder option. With withValue set, the text
// following flag is appended to builder.
type apiOption struct {
	flag      string
	builder   string
	withValue bool
}

var apiOptions = []apiOption{
	{flag: "--shared", builder: domain.OptionImageKind + domain.KindSharedLibrary},
	{flag: "--name=", builder: domain.OptionName, withValue: true},
	{flag: "--class=", builder: domain.OptionClass, withValue: true},
	{flag: "--features=", builder: domain.OptionFeatures, withValue: true},
	{flag: "--enable-url-protocols=", builder: "-H:EnableURLProtocols=", withValue: true},
	{flag: "--report-unsupported-elements-at-runtime", builder: "-H:+ReportUnsupportedElementsAtRuntime"},
	{flag: "--allow-incomplete-classpath", builder: "-H:+AllowIncompleteClasspath"},
	{flag: "--no-fallback", builder: "-H:FallbackThreshold=0"},
}

// APIHandler translates user facing options into image builder options.
type APIHandler struct{}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// Consume implements Handler.
func (h *APIHandler) Consume(s *domain.Session, args []string) ([]string, bool, error) {
	head := args[0]
	for _, opt := range apiOptions {
		if opt.withValue {
			value, ok := strings.CutPrefix(head, opt.flag)
			if !ok {
				continue
			}
			s.Store.AddCustomBuilderArg(opt.builder + value)
			return args[1:], true, nil
		}
		if head == opt.flag {
			s.Store.AddCustomBuilderArg(opt.builder)
			return args[1:], true, nil
		}
	}
	return args, false, nil
}
