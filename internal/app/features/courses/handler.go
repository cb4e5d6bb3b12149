// internal/app/features/courses/handler.go
package courses

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	uierrors "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/features/errors"
	coursestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/courses"
	objectivestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/objectives"
	syllabusstore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/syllabus"
	timetablestore "github.com/winnaoderwas/academy-coachigo-sub001/internal/app/store/timetable"
)

// Handler is the shared dependency container for the courses feature:
// the public catalog pages and the admin course management.
type Handler struct {
	DB         *mongo.Database
	Courses    *coursestore.Store
	Syllabus   *syllabusstore.Store
	Objectives *objectivestore.Store
	Timetable  *timetablestore.Store
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Courses:    coursestore.New(db),
		Syllabus:   syllabusstore.New(db),
		Objectives: objectivestore.New(db),
		Timetable:  timetablestore.New(db),
		ErrLog:     errLog,
		Log:        logger,
	}
}
