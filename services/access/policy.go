package access

import "errors"

// Course types the policy switches on.
const (
	TypeFree = "free"
	TypePaid = "paid"
	TypeVip  = "vip"
)

// ErrIneligibleRating is returned when a rating is submitted by a user who
// may not rate the course.
var ErrIneligibleRating = errors.New("not eligible to rate this course")

// Viewer is the authenticated caller. A nil *Viewer means the request is
// anonymous.
type Viewer struct {
	ID  uint
	VIP bool
}

// Course carries the fields access decisions depend on.
type Course struct {
	ID   uint
	Type string
}

// EnrollmentChecker reports whether a user holds an active enrollment in a
// course. Backed by the data store.
type EnrollmentChecker interface {
	IsEnrolled(userID, courseID uint) (bool, error)
}

// Policy gates content viewing and rating submission.
type Policy struct {
	Enrollments EnrollmentChecker
}

// CanAccess reports whether the viewer may open the course content.
//
// A vip course is open to every signed-in user with no check of the VIP
// flag. That mirrors long-standing production behavior; tightening it is a
// product decision, not a refactor.
func (p Policy) CanAccess(viewer *Viewer, course Course) (bool, error) {
	if viewer == nil {
		return false, nil
	}
	switch course.Type {
	case TypePaid:
		if viewer.VIP {
			return true, nil
		}
		return p.Enrollments.IsEnrolled(viewer.ID, course.ID)
	case TypeVip:
		return true, nil
	default:
		return true, nil
	}
}

// CanRate reports whether the viewer may submit a rating. raterIDs are the
// user ids behind the course's existing ratings; a viewer who already
// appears there, or who cannot access the course at all, is ineligible.
func (p Policy) CanRate(viewer *Viewer, course Course, raterIDs []uint) (bool, error) {
	ok, err := p.CanAccess(viewer, course)
	if err != nil || !ok {
		return false, err
	}
	for _, id := range raterIDs {
		if id == viewer.ID {
			return false, nil
		}
	}
	return true, nil
}
