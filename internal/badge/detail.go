package badge

import (
	"strings"

	ribbonerrors "github.com/alexisbeaulieu97/ribbon/pkg/errors"
)

// Detail is the optional extended information attached to a badge.
// It is either NoDetail or WithDetail.
type Detail interface {
	isDetail()
}

// NoDetail marks a badge without extended information. Such a badge is inert.
type NoDetail struct{}

// WithDetail carries the short text shown in the panel and an optional full text.
type WithDetail struct {
	Short string
	Full  string
}

func (NoDetail) isDetail()   {}
func (WithDetail) isDetail() {}

// HasFull reports whether a full text block should be rendered.
func (d WithDetail) HasFull() bool {
	return strings.TrimSpace(d.Full) != ""
}

// NewDetail builds a WithDetail, rejecting a blank short text.
func NewDetail(short, full string) (WithDetail, error) {
	if strings.TrimSpace(short) == "" {
		return WithDetail{}, ribbonerrors.NewMalformedDetailError("")
	}
	return WithDetail{Short: short, Full: full}, nil
}

// detailOf normalises a nil Detail to NoDetail and reports the WithDetail variant if present.
func detailOf(d Detail) (WithDetail, bool) {
	switch v := d.(type) {
	case WithDetail:
		return v, true
	case *WithDetail:
		if v == nil {
			return WithDetail{}, false
		}
		return *v, true
	default:
		return WithDetail{}, false
	}
}
