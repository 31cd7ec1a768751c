package knowledge

import (
	"fmt"
	"strings"
)

// DefaultOwner is the portfolio subject used when none is configured.
const DefaultOwner = "Sayan"

// Seed builds the portfolio knowledge base for the named owner. Entry order is
// significant: the first keyword found in the input wins.
func Seed(owner string) *Base {
	owner = ownerOrDefault(owner)
	first := strings.ToLower(strings.Fields(owner)[0])

	entries := []Entry{
		{
			Keyword:  "projects",
			Response: fmt.Sprintf("%s's main focus areas include AI-powered SaaS solutions, creative AI tools, and 3D + AI integration. He's particularly excited about building educational platforms that make AI accessible to everyone.", owner),
		},
		{
			Keyword:  "skills",
			Response: fmt.Sprintf("%s specializes in Machine Learning, Computer Vision, NLP, 3D Design with Blender, React & Three.js, Python & TensorFlow, and creative problem-solving. He's an AI generalist with a creative edge!", owner),
		},
		{
			Keyword:  "collaboration",
			Response: fmt.Sprintf("%s is open to AI project collaborations, 3D + AI innovation, startup co-founding opportunities, and consulting roles. He's particularly interested in projects that blend technical innovation with creative expression.", owner),
		},
		{
			Keyword:  "experience",
			Response: fmt.Sprintf("%s's journey started with AI fundamentals in 2020, evolved through deep learning exploration, and now focuses on creative fusion of AI with 3D design. He's building toward AI entrepreneurship.", owner),
		},
		{
			Keyword:  "contact",
			Response: fmt.Sprintf("You can reach %s through the contact form on this page, or connect with him on GitHub, LinkedIn, or Twitter. He's always excited to discuss new ideas and potential collaborations!", owner),
		},
		{
			Keyword:  "future",
			Response: fmt.Sprintf("%s envisions building AI-powered startups, creating educational platforms, contributing to applied AI research, and nurturing tech communities. His goal is to make AI more accessible and creative.", owner),
		},
		{
			Keyword:  "philosophy",
			Response: fmt.Sprintf("%s believes that 'Innovation thrives at the intersection of technology and creativity.' He thinks AI should amplify human potential rather than replace creativity, and that great technology should feel like magic.", owner),
		},
	}

	groups := []Group{
		{
			Name:     "greeting",
			Terms:    []string{"hello", "hi", "hey"},
			Response: fmt.Sprintf("Hello! Great to meet you. I'm here to tell you all about %s's work in AI and creative technology. What would you like to know?", owner),
		},
		{
			Name:       "identity",
			Terms:      []string{"who", first},
			RequireAll: true,
			Response:   fmt.Sprintf("%s is an AI generalist and creative technologist passionate about building the future. He combines machine learning expertise with 3D design skills to create innovative solutions.", owner),
		},
		{
			Name:     "design",
			Terms:    []string{"3d", "design"},
			Response: fmt.Sprintf("%s has extensive experience in 3D design and is particularly excited about merging 3D workflows with AI. He uses tools like Blender and Three.js to create immersive digital experiences.", owner),
		},
		{
			Name:     "startup",
			Terms:    []string{"startup", "entrepreneur"},
			Response: fmt.Sprintf("%s is building toward AI entrepreneurship! He's interested in co-founding startups that focus on AI-powered solutions, especially in creative and educational spaces.", owner),
		},
	}

	fallback := fmt.Sprintf("That's a great question! You can learn more about that by exploring the different sections of %s's portfolio, or feel free to reach out directly through the contact form. Is there anything specific about his AI projects or skills you'd like to know?", owner)

	return MustNew(entries, groups, fallback)
}

// Welcome 返回新会话的首条机器人消息。
func Welcome(owner string) string {
	return fmt.Sprintf("Hi! I'm %s's AI assistant. Ask me about his projects, skills, or collaboration opportunities!", ownerOrDefault(owner))
}

func ownerOrDefault(owner string) string {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return DefaultOwner
	}
	return owner
}
