// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/courses"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/summaries"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/auth"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/timeouts"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/viewdata"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the signed-in landing page.
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

type dashboardData struct {
	viewdata.BaseVM
	Sections     []models.CourseSection
	IsAdmin      bool
	SummaryCount int64
}

// ServeDashboard handles GET /dashboard. The route guard guarantees a
// signed-in user by the time this runs.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sections, err := h.Courses.ListSections(ctx)
	if err != nil {
		h.Log.Error("dashboard: list sections", zap.Error(err))
		// Render with an empty catalog rather than a 500 page.
		sections = nil
	}

	data := dashboardData{
		BaseVM:   viewdata.NewBaseVM(r, "Dashboard", "/"),
		Sections: sections,
		IsAdmin:  u != nil && u.Role == models.RoleAdmin,
	}

	if data.IsAdmin {
		// Admins see a running total of submitted summaries across the catalog.
		var total int64
		for _, sec := range sections {
			for _, v := range sec.Videos {
				n, err := h.Summaries.CountByVideo(ctx, v.VideoID)
				if err != nil {
					h.Log.Warn("dashboard: count summaries",
						zap.Error(err), zap.String("video_id", v.VideoID))
					continue
				}
				total += n
			}
		}
		data.SummaryCount = total
	}

	templates.Render(w, r, "dashboard", data)
}
