package i18n

type message struct {
	en string
	de string
}

// messages is the notice catalog. Keys are grouped by feature.
var messages = map[string]message{
	// Session group booking
	"booking.success": {
		en: "You have booked this session group.",
		de: "Sie haben diese Sessiongruppe gebucht.",
	},
	"booking.already_booked": {
		en: "You have already booked this session group.",
		de: "Sie haben diese Sessiongruppe bereits gebucht.",
	},
	"booking.failed": {
		en: "The booking could not be completed. Please try again.",
		de: "Die Buchung konnte nicht abgeschlossen werden. Bitte versuchen Sie es erneut.",
	},
	"booking.load_failed": {
		en: "Your bookings could not be loaded.",
		de: "Ihre Buchungen konnten nicht geladen werden.",
	},

	// Session groups
	"groups.load_failed": {
		en: "Session groups could not be loaded.",
		de: "Die Sessiongruppen konnten nicht geladen werden.",
	},
	"groups.sessions_load_failed": {
		en: "The sessions of this group could not be loaded.",
		de: "Die Sessions dieser Gruppe konnten nicht geladen werden.",
	},
	"groups.created": {
		en: "Session group created.",
		de: "Sessiongruppe erstellt.",
	},
	"groups.updated": {
		en: "Session group updated.",
		de: "Sessiongruppe aktualisiert.",
	},
	"groups.deleted": {
		en: "Session group deleted.",
		de: "Sessiongruppe gelöscht.",
	},
	"groups.delete_blocked": {
		en: "This session group has bookings and cannot be deleted.",
		de: "Diese Sessiongruppe hat Buchungen und kann nicht gelöscht werden.",
	},
	"groups.save_failed": {
		en: "The session group could not be saved.",
		de: "Die Sessiongruppe konnte nicht gespeichert werden.",
	},
	"groups.bad_course": {
		en: "Please select a course.",
		de: "Bitte wählen Sie einen Kurs aus.",
	},
	"groups.bad_date": {
		en: "Please enter a valid date.",
		de: "Bitte geben Sie ein gültiges Datum ein.",
	},
	"groups.end_before_start": {
		en: "The end date must not precede the start date.",
		de: "Das Enddatum darf nicht vor dem Startdatum liegen.",
	},
	"groups.bad_price": {
		en: "Please enter a valid price.",
		de: "Bitte geben Sie einen gültigen Preis ein.",
	},
	"timetable.title_required": {
		en: "Please enter a session title.",
		de: "Bitte geben Sie einen Sessiontitel ein.",
	},
	"groups.bad_max": {
		en: "Please enter a valid participant limit.",
		de: "Bitte geben Sie eine gültige Teilnehmerzahl ein.",
	},

	// Cart
	"cart.added": {
		en: "Added to cart.",
		de: "Zum Warenkorb hinzugefügt.",
	},
	"cart.removed": {
		en: "Removed from cart.",
		de: "Aus dem Warenkorb entfernt.",
	},
	"cart.empty": {
		en: "Your cart is empty.",
		de: "Ihr Warenkorb ist leer.",
	},
	"cart.load_failed": {
		en: "Your cart could not be loaded.",
		de: "Ihr Warenkorb konnte nicht geladen werden.",
	},

	// Checkout
	"checkout.success": {
		en: "Thank you! Your booking is confirmed.",
		de: "Vielen Dank! Ihre Buchung ist bestätigt.",
	},
	"checkout.failed": {
		en: "Checkout failed. Please try again.",
		de: "Der Bezahlvorgang ist fehlgeschlagen. Bitte versuchen Sie es erneut.",
	},

	// Courses
	"courses.load_failed": {
		en: "Courses could not be loaded.",
		de: "Die Kurse konnten nicht geladen werden.",
	},
	"courses.not_found": {
		en: "This course does not exist.",
		de: "Dieser Kurs existiert nicht.",
	},

	// Auth
	"login.invalid": {
		en: "Invalid email or password.",
		de: "E-Mail-Adresse oder Passwort ist ungültig.",
	},
	"login.disabled": {
		en: "This account is disabled.",
		de: "Dieses Konto ist deaktiviert.",
	},
	"register.email_taken": {
		en: "An account with this email already exists.",
		de: "Ein Konto mit dieser E-Mail-Adresse existiert bereits.",
	},

	// Courses (admin)
	"courses.created": {
		en: "Course created.",
		de: "Kurs erstellt.",
	},
	"courses.updated": {
		en: "Course updated.",
		de: "Kurs aktualisiert.",
	},
	"courses.deleted": {
		en: "Course deleted.",
		de: "Kurs gelöscht.",
	},
	"courses.save_failed": {
		en: "The course could not be saved.",
		de: "Der Kurs konnte nicht gespeichert werden.",
	},
	"courses.duplicate_slug": {
		en: "A course with this title already exists.",
		de: "Ein Kurs mit diesem Titel existiert bereits.",
	},
	"courses.bad_price": {
		en: "Please enter a valid price.",
		de: "Bitte geben Sie einen gültigen Preis ein.",
	},

	// Error pages
	"errors.forbidden_title": {
		en: "Access denied",
		de: "Zugriff verweigert",
	},
	"errors.forbidden": {
		en: "You don't have permission to view this page.",
		de: "Sie haben keine Berechtigung, diese Seite anzuzeigen.",
	},
	"errors.unauthorized_title": {
		en: "Sign in required",
		de: "Anmeldung erforderlich",
	},
	"errors.unauthorized": {
		en: "Please sign in to continue.",
		de: "Bitte melden Sie sich an, um fortzufahren.",
	},
	"errors.not_found_title": {
		en: "Not found",
		de: "Nicht gefunden",
	},
	"errors.not_found": {
		en: "The page you are looking for does not exist.",
		de: "Die gesuchte Seite existiert nicht.",
	},
	"errors.server_title": {
		en: "Something went wrong",
		de: "Etwas ist schiefgelaufen",
	},
	"errors.server": {
		en: "A server error occurred. Please try again later.",
		de: "Ein Serverfehler ist aufgetreten. Bitte versuchen Sie es später erneut.",
	},
}
