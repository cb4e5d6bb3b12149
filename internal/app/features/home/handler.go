package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	coursestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/courses"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	DB      *mongo.Database
	Courses *coursestore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Courses: coursestore.New(db),
		Log:     logger,
	}
}

type homeData struct {
	formutil.Base
	Featured []models.Course
}

// ServeRoot handles GET /, the landing page with a few featured
// courses. A failing catalog query degrades to an empty strip rather
// than an error page.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lang := i18n.Lang(r)
	title := "Welcome"
	if lang == i18n.DE {
		title = "Willkommen"
	}

	data := homeData{}
	formutil.SetBase(&data.Base, r, title, "/")

	featured, err := h.Courses.List(ctx, coursestore.ListFilter{ActiveOnly: true}, 1)
	if err != nil {
		h.Log.Warn("home: loading featured courses failed", zap.Error(err))
	} else {
		if len(featured) > 6 {
			featured = featured[:6]
		}
		data.Featured = featured
	}

	templates.Render(w, r, "home", data)
}
