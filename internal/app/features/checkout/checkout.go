// internal/app/features/checkout/checkout.go
package checkout

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/booking"
	cartstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/cart"
	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/auth"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/authz"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/formutil"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/i18n"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/inputval"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/normalize"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/app/system/timeouts"
	"github.com/winnaoderwas/academy-coachigo-sub001/internal/domain/models"
)

// participantInput defines validation rules for the checkout form.
type participantInput struct {
	Name  string `validate:"required,max=200" label:"Name"`
	Email string `validate:"required,email,max=320" label:"Email"`
}

type checkoutFormData struct {
	formutil.Base
	Items []cartstore.Item
	Total float64
	Name  string
	Email string
}

// bookedLine is one completed line of the order confirmation.
type bookedLine struct {
	Title     string
	Reference string
	Skipped   bool
}

type checkoutDoneData struct {
	formutil.Base
	Lines []bookedLine
}

// ServeCheckout handles GET /checkout: the participant form over the
// current cart contents.
func (h *Handler) ServeCheckout(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lang := i18n.Lang(r)
	title := "Checkout"
	if lang == i18n.DE {
		title = "Kasse"
	}

	data := checkoutFormData{}
	formutil.SetBase(&data.Base, r, title, "/cart")

	if u, signed := auth.CurrentUser(r); signed && u != nil {
		data.Name = u.Name
		data.Email = u.Email
	}

	items, err := h.Cart.Items(ctx, userID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "cart load failed", err,
			i18n.T(lang, "cart.load_failed"), "/cart")
		return
	}
	if len(items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}
	data.Items = items
	data.Total = cartstore.Total(items)

	templates.Render(w, r, "checkout_form", data)
}

// HandleCheckout handles POST /checkout: books every cart item for the
// user and shows the confirmation with booking references.
//
// Group items run through the booking coordinator; when the group is
// already booked the line is marked skipped rather than failing the
// whole order. Course items become course-level bookings with no group
// reference.
func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	lang := i18n.Lang(r)
	name := normalize.Name(r.FormValue("participant_name"))
	email := normalize.Email(r.FormValue("participant_email"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	items, err := h.Cart.Items(ctx, userID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "cart load failed", err,
			i18n.T(lang, "cart.load_failed"), "/cart")
		return
	}
	if len(items) == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	input := participantInput{Name: name, Email: email}
	if result := inputval.Validate(input); result.HasErrors() {
		data := checkoutFormData{Items: items, Total: cartstore.Total(items), Name: name, Email: email}
		formutil.SetBase(&data.Base, r, "Checkout", "/cart")
		data.SetError(result.First())
		templates.Render(w, r, "checkout_form", data)
		return
	}

	done := checkoutDoneData{}
	formutil.SetBase(&done.Base, r, i18n.T(lang, "checkout.success"), "/sessions")

	for _, it := range items {
		line := bookedLine{Title: it.Title(lang)}

		switch it.Kind {
		case cartstore.KindGroup:
			b, err := h.bookGroupItem(ctx, userID, it, name, email)
			switch {
			case errors.Is(err, booking.ErrAlreadyBooked):
				line.Skipped = true
			case err != nil:
				h.ErrLog.LogServerError(w, r, "checkout group booking failed", err,
					i18n.T(lang, "checkout.failed"), "/cart")
				return
			default:
				line.Reference = b.Reference
			}
		default:
			b, err := h.bookCourseItem(ctx, userID, it, name, email)
			if err != nil {
				h.ErrLog.LogServerError(w, r, "checkout course booking failed", err,
					i18n.T(lang, "checkout.failed"), "/cart")
				return
			}
			line.Reference = b.Reference
		}

		done.Lines = append(done.Lines, line)
	}

	if err := h.Cart.Clear(ctx, userID); err != nil {
		// The bookings are in; a stale cart is an annoyance, not a
		// failure.
		h.Log.Warn("cart clear after checkout failed",
			zap.String("user_id", userID.Hex()),
			zap.Error(err))
	}

	done.SetNotice(r, "checkout.success")
	templates.Render(w, r, "checkout_done", done)
}

func (h *Handler) bookGroupItem(ctx context.Context, userID primitive.ObjectID, it cartstore.Item, name, email string) (models.Booking, error) {
	groupID, err := primitive.ObjectIDFromHex(it.ID)
	if err != nil {
		return models.Booking{}, err
	}

	req := booking.Request{
		UserID:           userID,
		SessionGroupID:   groupID,
		ParticipantName:  name,
		ParticipantEmail: email,
		PaymentStatus:    "pending",
	}
	if courseID, err := primitive.ObjectIDFromHex(it.CourseID); err == nil {
		req.CourseID = courseID
	}
	return h.Coordinator.BookGroup(ctx, req)
}

func (h *Handler) bookCourseItem(ctx context.Context, userID primitive.ObjectID, it cartstore.Item, name, email string) (models.Booking, error) {
	courseID, err := primitive.ObjectIDFromHex(it.ID)
	if err != nil {
		return models.Booking{}, err
	}

	return h.Bookings.Insert(ctx, models.Booking{
		UserID:           userID,
		CourseID:         &courseID,
		TimetableID:      models.SentinelTimetableID,
		Status:           models.BookingConfirmed,
		PaymentStatus:    "pending",
		Reference:        uuid.NewString(),
		ParticipantName:  name,
		ParticipantEmail: email,
	})
}
