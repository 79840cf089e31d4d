package analytics

import (
	"context"

	"github.com/kbukum/analytics/logger"
	"github.com/kbukum/analytics/util"
)

const targetBlank = "_blank"

// Link is the anchor a tracked click landed on.
type Link struct {
	Href   string
	Target string
}

// Click describes the mouse event. Button 0 is the primary button.
type Click struct {
	Button int
	Meta   bool
	Ctrl   bool
	Shift  bool
	Alt    bool
}

// Plain reports a primary-button click with no modifier keys.
func (c Click) Plain() bool {
	return c.Button == 0 && !c.Meta && !c.Ctrl && !c.Shift && !c.Alt
}

// Form is the form a tracked submission came from.
type Form struct {
	Action string
	Method string
}

// TrackLink tracks event for a click on link. When the click is a plain
// primary-button click on a link with an href that does not open a new tab,
// the default navigation is suppressed: TrackLink returns true and calls
// navigate(link.Href) once providers have flushed or the client timeout has
// passed. Otherwise it returns false and navigate is never called. The
// replay happens even before Initialize so navigation is never lost.
func (c *Client) TrackLink(ctx context.Context, link Link, click Click, event string, properties util.Map, navigate func(href string)) bool {
	suppress := link.Href != "" && link.Target != targetBlank && click.Plain() && navigate != nil
	if !suppress {
		c.Track(ctx, event, properties)
		return false
	}

	c.log.Debug("link navigation deferred", map[string]interface{}{
		logger.FieldEvent: event,
		logger.FieldURL:   link.Href,
	})
	href := link.Href
	c.Track(ctx, event, properties)
	c.afterFlush(ctx, func() { navigate(href) })
	return true
}

// TrackForm tracks event for a submission of form. The submission is always
// suppressed and replayed by calling submit once providers have flushed or
// the client timeout has passed.
func (c *Client) TrackForm(ctx context.Context, form Form, event string, properties util.Map, submit func()) bool {
	if submit == nil {
		c.Track(ctx, event, properties)
		return false
	}

	c.log.Debug("form submission deferred", map[string]interface{}{
		logger.FieldEvent: event,
		logger.FieldURL:   form.Action,
	})
	c.Track(ctx, event, properties)
	c.afterFlush(ctx, submit)
	return true
}
