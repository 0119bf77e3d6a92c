package study

// DefaultSubjects is the HSC curriculum seeded on first run.
var DefaultSubjects = []string{
	"Bangla 1st paper", "Bangla 2nd paper", "English 1st paper",
	"English 2nd paper", "Math 1st paper", "Math 2nd paper",
	"Botany", "Zoology", "Chemistry 1st paper", "Chemistry 2nd paper",
	"Physics 1st paper", "Physics 2nd paper", "ICT", "Science",
}

// DefaultChapterCount is how many numbered chapters each seeded subject gets.
const DefaultChapterCount = 15

// Quotes shown on the dashboard and timer screens.
var Quotes = []string{
	"Success is the sum of small efforts, repeated day in and day out.",
	"Your only limit is your mind.",
	"Don't stop until you're proud.",
	"Study now, be proud later.",
	"The expert in anything was once a beginner.",
	"Believe in yourself and all that you are.",
}
