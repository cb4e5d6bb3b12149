// internal/app/features/cart/cart.go
package cart

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	cartstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/cart"
	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authz"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
)

type cartViewData struct {
	formutil.Base
	Items []cartstore.Item
	Total float64
}

// ServeCart handles GET /cart.
func (h *Handler) ServeCart(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lang := i18n.Lang(r)
	title := "Cart"
	if lang == i18n.DE {
		title = "Warenkorb"
	}

	data := cartViewData{}
	formutil.SetBase(&data.Base, r, title, "/courses")

	switch r.URL.Query().Get("notice") {
	case "added":
		data.SetNotice(r, "cart.added")
	case "removed":
		data.SetNotice(r, "cart.removed")
	}

	items, err := h.Cart.Items(ctx, userID)
	if err != nil {
		h.Log.Error("cart load failed", zap.Error(err))
		data.SetError(i18n.T(lang, "cart.load_failed"))
		templates.Render(w, r, "cart_view", data)
		return
	}
	data.Items = items
	data.Total = cartstore.Total(items)

	templates.Render(w, r, "cart_view", data)
}

// HandleAddCourse handles POST /cart/add/course/{id}.
func (h *Handler) HandleAddCourse(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	courseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/courses")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, courseID)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/courses")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "course load failed", err, "", "/courses")
		return
	}

	item := cartstore.Item{
		Kind:    cartstore.KindCourse,
		ID:      course.ID.Hex(),
		TitleEN: course.TitleEN,
		TitleDE: course.TitleDE,
		Price:   course.Price,
	}
	if err := h.Cart.Add(ctx, userID, item); err != nil {
		h.ErrLog.LogServerError(w, r, "cart add failed", err,
			i18n.T(i18n.Lang(r), "cart.load_failed"), "/courses")
		return
	}

	http.Redirect(w, r, "/cart?notice=added", http.StatusSeeOther)
}

// HandleAddGroup handles POST /cart/add/group/{id}.
func (h *Handler) HandleAddGroup(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, groupID)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "group load failed", err, "", "/sessions")
		return
	}
	if !g.IsActive {
		uierrors.RenderNotFound(w, r, "", "/sessions")
		return
	}

	item := cartstore.Item{
		Kind:     cartstore.KindGroup,
		ID:       g.ID.Hex(),
		CourseID: g.CourseID.Hex(),
		TitleEN:  g.Name,
		Price:    g.Price,
	}
	if err := h.Cart.Add(ctx, userID, item); err != nil {
		h.ErrLog.LogServerError(w, r, "cart add failed", err,
			i18n.T(i18n.Lang(r), "cart.load_failed"), "/sessions")
		return
	}

	http.Redirect(w, r, "/cart?notice=added", http.StatusSeeOther)
}

// HandleRemove handles POST /cart/remove. The item key comes from the
// form so one route covers both kinds.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	key := normalize.QueryParam(r.FormValue("item"))
	if key == "" {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Cart.Remove(ctx, userID, key); err != nil {
		h.ErrLog.LogServerError(w, r, "cart remove failed", err,
			i18n.T(i18n.Lang(r), "cart.load_failed"), "/cart")
		return
	}

	http.Redirect(w, r, "/cart?notice=removed", http.StatusSeeOther)
}

// HandleClear handles POST /cart/clear.
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Cart.Clear(ctx, userID); err != nil {
		h.ErrLog.LogServerError(w, r, "cart clear failed", err,
			i18n.T(i18n.Lang(r), "cart.load_failed"), "/cart")
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}
