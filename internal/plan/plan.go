// Package plan expands the fixed two-week action schedule with the
// client's shortlisted homes. Everything except the home names, phone
// numbers, and local authority is constant: the skeleton below is the
// whole schedule.
package plan

import "strings"

// Category groups tasks by the kind of effort involved
type Category string

const (
	CategoryCall      Category = "call"
	CategoryVisit     Category = "visit"
	CategoryPaperwork Category = "paperwork"
	CategoryResearch  Category = "research"
	CategoryDecision  Category = "decision"
)

// TaskPriority ranks how urgent a task is within its day
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// Task is one scheduled step of the action plan
type Task struct {
	Day              int          `json:"day"` // 1..14
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Priority         TaskPriority `json:"priority"`
	Category         Category     `json:"category"`
	EstimatedMinutes int          `json:"estimatedMinutes"`
}

// HomeContact is the name and phone carried into the schedule
type HomeContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Fallback text when a home or contact detail is missing
var fallbackNames = [3]string{"Top Choice", "Second Choice", "Third Choice"}

const (
	fallbackPhone     = "See report"
	fallbackAuthority = "your local authority"
)

// skeleton is the full 14-day schedule. {homeN}/{phoneN} and
// {authority} are the only dynamic parts.
var skeleton = []Task{
	{1, "Call {home1} to check availability", "Ask about current vacancies, waiting lists and move-in timescales. Phone: {phone1}.", PriorityHigh, CategoryCall, 20},
	{1, "Collect recent care and medication notes", "Gather GP summaries, medication lists and any hospital discharge notes to share with homes.", PriorityMedium, CategoryPaperwork, 30},
	{2, "Call {home2} to check availability", "Ask about current vacancies and whether they can meet the care needs discussed in this report. Phone: {phone2}.", PriorityHigh, CategoryCall, 20},
	{2, "Call {home3} to check availability", "Ask about current vacancies and fees. Phone: {phone3}.", PriorityMedium, CategoryCall, 20},
	{3, "Arrange a visit to {home1}", "Book a weekday visit, ideally over a mealtime so you can see daily life. Phone: {phone1}.", PriorityHigh, CategoryCall, 15},
	{4, "Request brochures and sample menus", "Ask {home2} and {home3} for their brochure, sample weekly menu and activity schedule.", PriorityLow, CategoryResearch, 20},
	{5, "Visit {home1}", "Meet the manager, ask about staffing levels at night, and talk to residents if possible.", PriorityHigh, CategoryVisit, 120},
	{6, "Arrange and complete a visit to {home2}", "Use the same questions as the first visit so the notes compare fairly. Phone: {phone2}.", PriorityHigh, CategoryVisit, 120},
	{7, "Compare notes from the first visits", "Write down what stood out at each home while it is fresh. Note any follow-up questions.", PriorityMedium, CategoryDecision, 45},
	{8, "Contact {authority} about a care needs assessment", "Request a needs assessment from the adult social care team. This is the gateway to any council funding.", PriorityHigh, CategoryPaperwork, 40},
	{9, "Ask the GP about a CHC checklist screening", "If health needs are significant, request an NHS Continuing Healthcare checklist via the GP or {authority}.", PriorityMedium, CategoryPaperwork, 30},
	{10, "Visit {home3}", "Complete the shortlist with a visit to the third home. Phone: {phone3}.", PriorityMedium, CategoryVisit, 120},
	{11, "Gather financial documents", "Collect bank statements, pension details and property information ready for the means test.", PriorityMedium, CategoryPaperwork, 60},
	{12, "Review the shortlist with family", "Go through the visit notes, fees and funding position together and agree a preferred home.", PriorityHigh, CategoryDecision, 60},
	{13, "Confirm fees and contract terms with {home1}", "Ask for the full fee breakdown, notice periods and what triggers fee increases. Phone: {phone1}.", PriorityHigh, CategoryCall, 30},
	{14, "Make the final decision and reserve a room", "Confirm the chosen home in writing and agree a move-in date. Keep copies of everything signed.", PriorityHigh, CategoryDecision, 45},
}

// Generate expands the schedule for the top-ranked homes. Missing
// homes, phones, or authority fall back to generic text; the schedule
// shape never changes.
func Generate(top []HomeContact, localAuthority string) []Task {
	pairs := make([]string, 0, 14)

	for i := 0; i < 3; i++ {
		name := fallbackNames[i]
		phone := fallbackPhone
		if i < len(top) {
			if top[i].Name != "" {
				name = top[i].Name
			}
			if top[i].Phone != "" {
				phone = top[i].Phone
			}
		}
		n := string(rune('1' + i))
		pairs = append(pairs, "{home"+n+"}", name, "{phone"+n+"}", phone)
	}

	if localAuthority == "" {
		localAuthority = fallbackAuthority
	}
	pairs = append(pairs, "{authority}", localAuthority)

	r := strings.NewReplacer(pairs...)

	out := make([]Task, len(skeleton))
	for i, t := range skeleton {
		t.Title = r.Replace(t.Title)
		t.Description = r.Replace(t.Description)
		out[i] = t
	}
	return out
}
