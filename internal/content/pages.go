package content

import "onboardpdf/internal/document"

// Page names, in document order.
const (
	PageCover          = "cover"
	PageWelcome        = "welcome"
	PageRoleGuides     = "role-guides"
	PageConduct        = "code-of-conduct"
	PageChurch         = "church-insert"
	PageAcknowledgment = "acknowledgment"
)

// PageOrder is the fixed order of the six logical pages.
var PageOrder = []string{
	PageCover,
	PageWelcome,
	PageRoleGuides,
	PageConduct,
	PageChurch,
	PageAcknowledgment,
}

// ContactEmail is where signed packets are returned.
const ContactEmail = "media@chronosmedia.to"

func heading(s string) document.Block    { return document.Heading{Text: s, Level: 1} }
func subheading(s string) document.Block { return document.Heading{Text: s, Level: 2} }
func space(inches float64) document.Block {
	return document.Spacer{Height: inches * document.Inch}
}

func body(s string) document.Block {
	return document.Paragraph{Text: document.Text(s), Style: document.StyleBody}
}

func styled(s string, style document.StyleName) document.Block {
	return document.Paragraph{Text: document.Text(s), Style: style}
}

// bullet renders "• <b>label</b> rest".
func bullet(label, rest string) document.Block {
	return document.Paragraph{
		Style: document.StyleBody,
		Text: document.RichText{
			{Text: "• "},
			{Text: label, Bold: true},
			{Text: " " + rest},
		},
	}
}

func check(s string) document.Block {
	return document.Paragraph{
		Style: document.StyleBody,
		Text: document.RichText{
			{Text: "4", Check: true},
			{Text: " " + s},
		},
	}
}

var dressTableStyle = document.TableStyle{
	FontSize:       10,
	HeaderFontSize: 12,
	Padding:        3,
	HeaderPadding:  6,
	HeaderRow:      true,
	HeaderFill:     &document.Color{R: 0xE8, G: 0xF4, B: 0xF8},
	BodyFill:       &document.Color{R: 255, G: 255, B: 255},
	Grid:           true,
	GridColor:      document.Color{R: 128, G: 128, B: 128},
	GridWidth:      1,
}

var formTableStyle = document.TableStyle{
	FontSize:        12,
	Padding:         8,
	BoldFirstColumn: true,
}

func row(cells ...string) []document.RichText {
	out := make([]document.RichText, len(cells))
	for i, c := range cells {
		out[i] = document.Text(c)
	}
	return out
}

var coverPage = []document.Block{
	space(2),
	styled("Welcome to Chronos Media", document.StyleTitle),
	styled("Capturing the Agapē Moments", document.StyleSubtitle),
	space(0.5),
	body("Onboarding & Welcome Packet"),
	space(0.3),
	body("Chronos Media Live LLC"),
	body("Professional Media • Live Streaming • Photography • Audio Production • Church Media"),
}

var welcomePage = []document.Block{
	heading("Welcome"),
	body("Welcome to Chronos Media. We're excited to have you join our team. Whether you are staff, " +
		"contractor, or volunteer, you are an important part of our mission to serve moments that matter " +
		"with excellence, care, and professionalism."),
	space(0.2),

	heading("Who We Are"),
	body("Chronos Media Live LLC is a full-service media company specializing in live streaming, " +
		"photography, audio production, and church-focused media services. Our name reflects " +
		"preparation, reliability, and purpose — and our work reflects service."),
	space(0.2),

	heading("Our Services"),
	bullet("Live Streaming & Broadcast", "(chronosmedia.to/live) – Multi-camera production and reliable streaming for churches and events."),
	bullet("Photography", "(chronosmedia.to/photos) – Event and ministry photography that tells the story with clarity and respect."),
	bullet("Audio Production", "(chronosmedia.to/audio) – Clean, balanced sound for live events and recordings."),
	bullet("Church Teams", "(chronosmedia.to/churches) – Worship-aware production workflows and support."),
	space(0.2),

	heading("Communication & Tools"),
	body("You will be provided a @chronosmedia.to email address. For initial setup, contact Stephen Johnson at " + ContactEmail + "."),
	space(0.2),

	heading("Getting Started Checklist"),
	check("Email account activated (credentials received)"),
	check("Device(s) configured (phone and/or computer)"),
	check("Role and responsibilities reviewed"),
	check("Access to required tools/platforms confirmed"),
	check("Point of contact for your role established"),
	space(0.2),

	heading("Support & Help"),
	body("If you need help at any time, contact " + ContactEmail + " or call (267) 535-0921. " +
		"During live events, follow on-site leadership and escalate issues calmly and clearly."),
}

var roleGuidesPage = []document.Block{
	heading("Role-Specific Quick Guides"),
	body("Use the section that matches your assigned role. These are the standards we follow on every project."),
	space(0.15),

	subheading("Live Team (Streaming & Broadcast)"),
	bullet("Arrive early:", "target 60–90 minutes before call time (or as directed)."),
	bullet("Pre-flight checks:", "power, cables, audio levels, camera framing, and internet/encoder status."),
	bullet("During the live:", "keep chatter minimal, monitor audio meters, and watch for dropped frames."),
	bullet("Red button rule:", "when live, changes are coordinated through the lead only."),
	bullet("Wrap:", "confirm recording saved, upload/hand-off files, pack down neatly, and leave the space better than you found it."),
	space(0.1),

	subheading("Photo Team (Photography)"),
	bullet("Respect the moment:", "be present but unobtrusive — especially in worship and prayer."),
	bullet("Consistency:", "keep color/white balance stable across the set when possible."),
	bullet("Shot list:", "confirm the must-have shots (leaders, key moments, groups, details)."),
	bullet("File handling:", "do not delete originals; back up promptly; name folders clearly (Date_Event_Client)."),
	bullet("Delivery:", "follow the approved workflow for selections, edits, and exports."),
	space(0.1),

	subheading("Audio Team (Live Sound & Recording)"),
	bullet("Clarity first:", "vocals must be intelligible; avoid harsh EQ; manage dynamics."),
	bullet("Feedback prevention:", "gain staging, mic discipline, and smart EQ are your best tools."),
	bullet("Mic etiquette:", "placement matters — ask before moving a mic, and tape cables safely."),
	bullet("Record when possible:", "capture a safety recording for post needs (if approved)."),
	bullet("Communication:", "coordinate with Live/Photo leads for cues and quiet moments."),
	space(0.1),

	subheading("Church Teams (Worship & Ministry Environments)"),
	bullet("Reverence:", "worship spaces require extra care — move quietly and avoid distractions."),
	bullet("Privacy:", "do not record or photograph private moments unless explicitly approved."),
	bullet("Service flow:", "learn the order of service and confirm cues (prayer, communion, altar calls)."),
	bullet("Dress & demeanor:", "professional, modest, and aligned with the church's culture."),
	bullet("Kids & sensitive content:", "follow client guidance and any consent requirements."),
}

var conductPage = []document.Block{
	heading("Code of Conduct"),
	bullet("Professionalism:", "represent Chronos Media with respect, patience, and calm communication."),
	bullet("Confidentiality:", "do not share client details, schedules, footage, or private information without approval."),
	bullet("Safety:", "tape down cables, keep walkways clear, and follow venue rules at all times."),
	bullet("Respect property:", "handle equipment carefully; report damage immediately; never leave gear unattended."),
	bullet("Social media:", "do not post behind-the-scenes or client content unless you receive explicit permission."),
	space(0.2),

	heading("Dress Guidelines"),
	body("Dress depends on the venue, but always prioritize a clean, professional appearance. When unsure, dress more formally."),
	space(0.1),
	document.Table{
		ColumnWidths: []float64{3 * document.Inch, 3 * document.Inch},
		Style:        dressTableStyle,
		Rows: [][]document.RichText{
			row("Recommended", "Avoid"),
			row("Black or neutral clothing; clean shoes", "Graphic tees; loud patterns"),
			row("Business casual for churches/events", "Shorts (unless approved for outdoor work)"),
			row("Modest attire for worship services", "Distracting accessories/noisy jewelry"),
			row("Weather-ready layers for outdoor setups", "Unprofessional hats (unless part of uniform)"),
		},
	},
}

var churchPage = []document.Block{
	heading("Church-Specific Onboarding Insert"),
	body("This insert applies whenever Chronos Media serves a church service, ministry, or faith-based event."),
	space(0.1),
	bullet("Arrival & setup:", "check in with the designated church point-of-contact before unloading."),
	bullet("Soundcheck:", "confirm speaking mic(s), music inputs, and livestream feed levels."),
	bullet("Camera positions:", "avoid blocking aisles; keep trip hazards minimized; confirm any restricted areas."),
	bullet("During prayer/altar calls:", "reduce movement; zoom/crop respectfully; prioritize reverence."),
	bullet("Children/minors:", "follow church guidance on filming/photography and consent requirements."),
	bullet("After service:", "confirm any deliverables (recording link, photos, audio) and thank staff."),
	space(0.3),

	heading("Quick Links"),
	body("Main Site: chronosmedia.to"),
	body("Live: chronosmedia.to/live"),
	body("Photos: chronosmedia.to/photos"),
	body("Audio: chronosmedia.to/audio"),
	body("Church Teams: chronosmedia.to/churches"),
}

// staticPages maps each non-templated page to its blocks.
var staticPages = map[string][]document.Block{
	PageCover:      coverPage,
	PageWelcome:    welcomePage,
	PageRoleGuides: roleGuidesPage,
	PageConduct:    conductPage,
	PageChurch:     churchPage,
}
