// internal/app/features/class/handler.go
package class

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/courses"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/summaries"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/auth"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/htmlsanitize"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/timeouts"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/viewdata"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves the class page: the video player plus role-conditioned
// summary operations. Members submit summaries for the video they are
// watching; admins see every summary submitted for it.
type Handler struct {
	Courses   *courses.Store
	Summaries *summaries.Store
	Log       *zap.Logger
}

func NewHandler(courseStore *courses.Store, summaryStore *summaries.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Courses:   courseStore,
		Summaries: summaryStore,
		Log:       logger,
	}
}

type classPageData struct {
	viewdata.BaseVM
	Video     models.Video
	IsAdmin   bool
	CanSubmit bool

	Summaries []models.Summary // admin only

	Submitted bool
	Error     string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /class                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeClass renders the class page for the selected video. Without a video
// query parameter the first video in the catalog is shown.
func (h *Handler) ServeClass(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	video, ok, err := h.selectVideo(ctx, query.Get(r, "video"))
	if err != nil {
		h.Log.Error("class: load video", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	isAdmin := u != nil && u.Role == models.RoleAdmin

	data := classPageData{
		BaseVM:    viewdata.NewBaseVM(r, video.Title, "/dashboard"),
		Video:     video,
		IsAdmin:   isAdmin,
		CanSubmit: !isAdmin,
		Submitted: query.Get(r, "submitted") == "1",
	}
	if query.Get(r, "error") == "empty_summary" {
		data.Error = "Summary cannot be empty."
	}

	if isAdmin {
		list, err := h.Summaries.ListByVideo(ctx, video.VideoID)
		if err != nil {
			h.Log.Error("class: list summaries",
				zap.Error(err), zap.String("video_id", video.VideoID))
			data.Error = "Could not load summaries."
		} else {
			data.Summaries = list
		}
	}

	templates.Render(w, r, "class", data)
}

// selectVideo returns the requested video, or the first one in the catalog
// when no id is given.
func (h *Handler) selectVideo(ctx context.Context, videoID string) (models.Video, bool, error) {
	if videoID == "" {
		return h.Courses.FirstVideo(ctx)
	}
	return h.Courses.FindVideo(ctx, videoID)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /class/summaries                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeSubmitSummary appends a summary for the video named in the form.
// Admins view summaries but do not submit them; the route guard enforces
// the member role before this runs.
func (h *Handler) ServeSubmitSummary(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	videoID := strings.TrimSpace(r.PostFormValue("video"))
	text := htmlsanitize.PlainText(r.PostFormValue("text"))

	if strings.TrimSpace(text) == "" {
		// Validation failure: nothing is written, the form shows the message.
		http.Redirect(w, r, classURL(videoID, "error", "empty_summary"), http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	video, found, err := h.Courses.FindVideo(ctx, videoID)
	if err != nil {
		h.Log.Error("submit summary: load video", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	authorID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		h.Log.Error("submit summary: malformed session user id",
			zap.Error(err), zap.String("user_id", u.ID))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	_, err = h.Summaries.Create(ctx, models.Summary{
		AuthorID:       authorID,
		AuthorName:     u.Name,
		AuthorEmail:    u.Email,
		AuthorPhotoURL: u.PhotoURL,
		VideoID:        video.VideoID,
		VideoTitle:     video.Title,
		Text:           text,
	})
	if err != nil {
		h.Log.Error("submit summary: create",
			zap.Error(err), zap.String("video_id", video.VideoID))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.Log.Info("summary submitted",
		zap.String("video_id", video.VideoID),
		zap.String("author", u.Email))

	http.Redirect(w, r, classURL(video.VideoID, "submitted", "1"), http.StatusSeeOther)
}

func classURL(videoID, key, val string) string {
	q := url.Values{}
	if videoID != "" {
		q.Set("video", videoID)
	}
	q.Set(key, val)
	return "/class?" + q.Encode()
}
