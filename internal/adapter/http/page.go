package httpadapter

import (
	"embed"
	"io/fs"
	"net/http"
	"slices"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"campaign-studio/internal/core/domain"
	"campaign-studio/internal/studio"
)

const indexTemplate = "index.html"

//go:embed templates
var templateFS embed.FS

type pages struct {
	index *pongo2.Template
}

func loadPages() *pages {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	set := pongo2.NewSet("studio", pongo2.NewFSLoader(sub))
	return &pages{index: pongo2.Must(set.FromFile(indexTemplate))}
}

type option struct {
	Value    string
	Selected bool
}

func options(values []string, selected ...string) []option {
	out := make([]option, len(values))
	for i, v := range values {
		out[i] = option{Value: v, Selected: slices.Contains(selected, v)}
	}
	return out
}

type resultView struct {
	Tagline    string
	BrandStory string
	Hooks      []string
	Captions   []string
	Hashtags   string
	Hindi      string
	Kannada    string
	Note       string
	Copy       map[string]string
}

func newResultView(res *domain.CampaignResult) *resultView {
	clean := scrubResult(res)
	view := &resultView{
		Tagline:    clean.Tagline,
		BrandStory: clean.BrandStory,
		Hooks:      clean.Hooks,
		Captions:   clean.Captions,
		Hashtags:   strings.Join(clean.Hashtags, " "),
		Hindi:      clean.TranslatedCaptionHi,
		Kannada:    clean.TranslatedCaptionKn,
		Note:       clean.Note,
		Copy:       make(map[string]string),
	}
	for _, s := range studio.Sections(clean) {
		view.Copy[s.Key] = s.Copy
	}
	return view
}

// pageState is everything the studio page shows: the form as the user left
// it, the request a regenerate would reuse, and either a result or an error.
type pageState struct {
	form           studio.FormInput
	last           *domain.CampaignRequest
	regenerateTone string
	result         *domain.CampaignResult
	err            string
}

func (s pageState) context() pongo2.Context {
	platforms := s.form.Platforms
	if len(platforms) == 0 {
		platforms = []string{domain.DefaultPlatform}
	}
	tone := s.form.Tone
	if tone == "" {
		tone = domain.DefaultTone
	}
	regenerateTone := s.regenerateTone
	if regenerateTone == "" {
		regenerateTone = studio.DefaultRegenerateTone
	}

	ctx := pongo2.Context{
		"form":            s.form,
		"platforms":       options(studio.PlatformOptions, platforms...),
		"tones":           options(studio.ToneOptions, tone),
		"regenerateTones": options(studio.RegenerateToneOptions, regenerateTone),
		"error":           s.err,
	}
	// pongo2 treats structs as false in {% if %}, so presence gets its own flag
	if s.last != nil {
		ctx["last"] = s.last
		ctx["hasLast"] = true
	}
	if s.result != nil {
		ctx["result"] = newResultView(s.result)
		ctx["hasResult"] = true
	}
	return ctx
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageState{})
}

// handleSubmit runs the campaign form. The previous result is never carried
// over; a failed submit shows only the form and the error banner.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, pageState{err: msgInvalidBody})
		return
	}
	in := studio.FormInput{
		ProductName: r.PostForm.Get("productName"),
		Description: r.PostForm.Get("description"),
		Audience:    r.PostForm.Get("audience"),
		Platforms:   r.PostForm["platforms"],
		Tone:        r.PostForm.Get("tone"),
	}
	h.generate(w, r, pageState{form: in}, in.Request())
}

// handleRegenerate resubmits the request carried in the hidden fields with
// only the tone replaced.
func (h *Handler) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, pageState{err: msgInvalidBody})
		return
	}
	last := domain.CampaignRequest{
		ProductName: r.PostForm.Get("productName"),
		Description: r.PostForm.Get("description"),
		Audience:    r.PostForm.Get("audience"),
		Platform:    r.PostForm.Get("platform"),
		Tone:        r.PostForm.Get("lastTone"),
	}
	if strings.TrimSpace(last.ProductName) == "" && strings.TrimSpace(last.Description) == "" {
		h.render(w, r, http.StatusBadRequest, pageState{err: studio.ErrNothingToRedo.Error()})
		return
	}
	tone := studio.NormalizeTone(r.PostForm.Get("tone"), studio.RegenerateToneOptions, studio.DefaultRegenerateTone)
	req := studio.Regenerate(last, tone)

	state := pageState{
		form: studio.FormInput{
			ProductName: last.ProductName,
			Description: last.Description,
			Audience:    last.Audience,
			Platforms:   studio.SplitPlatforms(last.Platform),
			Tone:        last.Tone,
		},
		regenerateTone: tone,
	}
	// the regenerate controls stay available after a failure
	state.last = &last
	h.generate(w, r, state, req)
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request, state pageState, req domain.CampaignRequest) {
	res, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.logger.Debug("studio page generate failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Stringer("kind", domain.KindOf(err)),
			zap.Error(err),
		)
		state.err = errorMessage(err)
		h.render(w, r, statusFor(err), state)
		return
	}
	state.result = res
	state.last = &req
	h.render(w, r, http.StatusOK, state)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, state pageState) {
	out, err := h.pages.index.Execute(state.context())
	if err != nil {
		h.logger.Error("render page error",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		http.Error(w, domain.MsgGenericFailure, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(out))
}
