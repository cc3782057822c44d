package templates

import (
	"fmt"
	"html"
	"strings"

	"github.com/cardpress/cardpress-go/internal/domain/entities/cards"
	services "github.com/cardpress/cardpress-go/internal/domain/services"
)

// Default canvas dimensions when the layout config supplies none.
const (
	defaultCanvasWidth  = 400
	defaultCanvasHeight = 600
)

// cardBreakpoint is the viewport width above which the document
// switches from edge-to-edge mobile framing to a centered, shadowed
// card.
const cardBreakpoint = 480

// AssembleDocument wraps the concatenated element fragments inside the
// fixed-size canvas container and emits the complete HTML document with
// the standard metadata block from the resolver's outputs.
func AssembleDocument(res *services.DataResolver, fragments string) string {
	width, height := canvasSize(res.Request())
	scheme := res.Scheme()

	var sb strings.Builder
	sb.Grow(4096)

	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("<meta charset=\"UTF-8\">\n")
	sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(res.OGTitle()))
	fmt.Fprintf(&sb, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(res.OGDescription()))
	fmt.Fprintf(&sb, "<link rel=\"canonical\" href=\"%s\">\n", html.EscapeString(res.CanonicalURL()))
	fmt.Fprintf(&sb, "<link rel=\"icon\" href=\"%s\">\n", html.EscapeString(res.Favicon()))
	fmt.Fprintf(&sb, "<meta name=\"theme-color\" content=\"%s\">\n", html.EscapeString(scheme.Primary))

	// Open Graph social preview block.
	sb.WriteString("<meta property=\"og:type\" content=\"profile\">\n")
	fmt.Fprintf(&sb, "<meta property=\"og:title\" content=\"%s\">\n", html.EscapeString(res.OGTitle()))
	fmt.Fprintf(&sb, "<meta property=\"og:description\" content=\"%s\">\n", html.EscapeString(res.OGDescription()))
	fmt.Fprintf(&sb, "<meta property=\"og:image\" content=\"%s\">\n", html.EscapeString(res.OGImage()))
	fmt.Fprintf(&sb, "<meta property=\"og:url\" content=\"%s\">\n", html.EscapeString(res.CanonicalURL()))
	sb.WriteString("<meta name=\"twitter:card\" content=\"summary\">\n")
	fmt.Fprintf(&sb, "<meta name=\"twitter:title\" content=\"%s\">\n", html.EscapeString(res.OGTitle()))
	fmt.Fprintf(&sb, "<meta name=\"twitter:image\" content=\"%s\">\n", html.EscapeString(res.OGImage()))

	// One responsive rule: edge-to-edge on mobile, centered shadowed
	// card above the breakpoint.
	sb.WriteString("<style>\n")
	sb.WriteString("html, body { margin: 0; padding: 0; font-family: system-ui, -apple-system, sans-serif; }\n")
	fmt.Fprintf(&sb, "body { background-color: %s; }\n", scheme.Background)
	fmt.Fprintf(&sb, ".card-canvas { position: relative; width: %dpx; height: %dpx; max-width: 100%%; overflow: hidden; %s; }\n",
		width, height, res.BackgroundStyle())
	fmt.Fprintf(&sb, "@media (min-width: %dpx) { .card-canvas { margin: 40px auto; border-radius: 16px; box-shadow: 0 10px 30px rgba(0, 0, 0, 0.15); } }\n",
		cardBreakpoint)
	sb.WriteString("</style>\n</head>\n<body>\n")

	fmt.Fprintf(&sb, "<div class=\"card-canvas\">%s</div>\n", fragments)

	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}

func canvasSize(req *cards.RenderRequest) (int, int) {
	width, height := defaultCanvasWidth, defaultCanvasHeight
	if req != nil && req.Template != nil && req.Template.Layout != nil {
		if req.Template.Layout.Width > 0 {
			width = req.Template.Layout.Width
		}
		if req.Template.Layout.Height > 0 {
			height = req.Template.Layout.Height
		}
	}
	return width, height
}
