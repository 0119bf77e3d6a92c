package tutor

import "fmt"

// tutorSystemPrompt builds the persona instruction for free-text Q&A.
func tutorSystemPrompt(sctx StudyContext) string {
	return fmt.Sprintf(`You are "Edu Booster AI", a world-class academic tutor and study strategist for Bangladeshi students (specializing in SSC/HSC levels).
Your goal is to provide deep, accurate, and encouraging explanations.
- When explaining science/math, use analogies related to daily life in Bangladesh.
- Reference common textbook styles like NCTB.
- Format your output with clear headings and bullet points.
- If the user asks for a strategy, consider their study data: %s.
- Always encourage the student and maintain a helpful, "Senior Brother/Teacher" persona.`,
		marshalContext(sctx))
}

// insightsPrompt asks for weak/strong subjects and one actionable tip.
func insightsPrompt(sctx StudyContext) string {
	return fmt.Sprintf(`Based on this study data: %s, identify the top 2 weak and top 2 strong subjects. Also provide one actionable study tip for tomorrow. Return the result in a clean JSON format.`,
		marshalContext(sctx))
}

// videoPrompt builds the video search query. When platform is empty the
// search covers the well-known Bangladeshi educational channels.
func videoPrompt(query, platform string) string {
	platformContext := `from leading Bangladeshi educational platforms like Physics Hunters, ACS (Apar's Classroom), Brothers Suggestions, Bondi Pathshala, Meson, or 10 Minute School`
	if platform != "" {
		platformContext = fmt.Sprintf("specifically from the platform %q", platform)
	}
	return fmt.Sprintf(`Find exactly 8 highly relevant YouTube educational video links for the search term: %q.
Target Audience: Bangladeshi Students (HSC/SSC level).
Priority Sources: %s.
Return the results as a JSON array of objects.
Each object MUST have: title, channel, url (valid YouTube link), thumbnail (YouTube maxresdefault preferred), and duration (e.g. '15:45').`,
		query, platformContext)
}
