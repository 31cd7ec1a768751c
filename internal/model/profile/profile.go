package profile

import "fmt"

// Section is one anchored block of the single-page layout.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Link is a static outbound social link.
type Link struct {
	Label       string `json:"label"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// TimelineItem 描述 about 区块中的一段经历。
type TimelineItem struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ManifestoItem pairs a belief with the thinking behind it.
type ManifestoItem struct {
	Statement string `json:"statement"`
	Thought   string `json:"thought"`
}

// VisionNode is one venture orbiting the future-vision scene.
type VisionNode struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    [3]float64 `json:"position"`
	Color       string     `json:"color"`
}

// Mood 标记想法卡片的类别。
type Mood string

const (
	MoodInsight    Mood = "insight"
	MoodIdea       Mood = "idea"
	MoodReflection Mood = "reflection"
	MoodVision     Mood = "vision"
)

// Thought is a short card in the words feed. Posted is display text such as
// "2 hours ago", not a parsed time.
type Thought struct {
	ID      string   `json:"id"`
	Content string   `json:"content"`
	Posted  string   `json:"posted"`
	Tags    []string `json:"tags,omitempty"`
	Mood    Mood     `json:"mood"`
}

// Collaboration describes one kind of engagement offered in the contact block.
type Collaboration struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Commitment  string `json:"commitment"`
}

// Profile aggregates the hard-coded page content.
type Profile struct {
	Owner          string          `json:"owner"`
	Headline       string          `json:"headline"`
	Tagline        string          `json:"tagline"`
	Intro          string          `json:"intro"`
	About          string          `json:"about"`
	Philosophy     string          `json:"philosophy"`
	Sections       []Section       `json:"sections"`
	Links          []Link          `json:"links"`
	Timeline       []TimelineItem  `json:"timeline"`
	Skills         []string        `json:"skills"`
	Manifesto      []ManifestoItem `json:"manifesto"`
	Vision         []VisionNode    `json:"vision"`
	Thoughts       []Thought       `json:"thoughts"`
	Collaborations []Collaboration `json:"collaborations"`
	Footer         string          `json:"footer"`
}

// Seed provides the page content for the named owner.
func Seed(owner string) Profile {
	return Profile{
		Owner:      owner,
		Headline:   "Designing the Future",
		Tagline:    "with AI & Imagination",
		Intro:      fmt.Sprintf("I'm %s — AI generalist, creative technologist, future founder.", owner),
		About:      "I'm an AI generalist passionate about bridging the gap between cutting-edge technology and creative expression. My journey spans from machine learning algorithms to 3D visual experiences, always with an eye toward building the future.",
		Philosophy: "The future belongs to those who can seamlessly blend technical mastery with creative vision. I believe AI isn't just about algorithms—it's about crafting experiences that push the boundaries of what's possible.",
		Sections: []Section{
			{ID: "hero", Title: "Home"},
			{ID: "about", Title: "About"},
			{ID: "manifesto", Title: "Manifesto"},
			{ID: "future-vision", Title: "Vision"},
			{ID: "words-feed", Title: "Thoughts"},
			{ID: "contact", Title: "Connect"},
		},
		Links: []Link{
			{Label: "GitHub", URL: "https://github.com/saynchowdhury", Description: "Open source AI projects and innovative code"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/sayan-chowdhury-b4ba6b35b/", Description: "Professional network and AGI insights"},
			{Label: "Email", URL: "mailto:sayan@example.com", Description: "Direct email for AI collaborations and ventures"},
		},
		Timeline: []TimelineItem{
			{Year: "2020", Title: "Discovery Phase", Description: "First encounter with AI and machine learning fundamentals"},
			{Year: "2021", Title: "Deep Dive", Description: "Immersed in neural networks, computer vision, and NLP"},
			{Year: "2022", Title: "Creative Fusion", Description: "Combined AI with 3D design and creative technologies"},
			{Year: "2023+", Title: "Future Vision", Description: "Building the foundation for AI-powered entrepreneurship"},
		},
		Skills: []string{
			"Machine Learning & Deep Learning",
			"Computer Vision & NLP",
			"3D Design & Blender",
			"React & Three.js",
			"Python & TensorFlow",
			"Creative Problem Solving",
		},
		Manifesto: []ManifestoItem{
			{
				Statement: "Innovation thrives at the intersection of technology and creativity",
				Thought:   "The most groundbreaking solutions emerge when we dare to blend analytical precision with artistic vision. This fusion creates possibilities that neither domain could achieve alone.",
			},
			{
				Statement: "AI should amplify human potential, not replace human creativity",
				Thought:   "True AI advancement comes from building tools that enhance our natural abilities—making us more creative, more efficient, and more capable of solving complex challenges.",
			},
			{
				Statement: "The future is built by those who think beyond current limitations",
				Thought:   "Every major breakthrough started with someone willing to question the status quo and imagine what others deemed impossible. Vision precedes reality.",
			},
			{
				Statement: "Learning never stops; the moment you think you know everything, you become obsolete",
				Thought:   "In a rapidly evolving field like AI, adaptability and continuous learning aren't just advantages—they're survival skills. Curiosity is the ultimate competitive edge.",
			},
			{
				Statement: "Great technology should feel like magic, even when you understand the science",
				Thought:   "The best technological experiences seamlessly blend complexity with simplicity, creating solutions that feel intuitive and almost magical to users.",
			},
			{
				Statement: "Building the future requires both bold vision and meticulous execution",
				Thought:   "Dreams without execution remain fantasies, but execution without vision lacks purpose. Success lies in the balance between ambitious thinking and detailed implementation.",
			},
		},
		Vision: []VisionNode{
			{ID: "ai-startup", Title: "AI-Powered SaaS", Description: "Building intelligent software solutions that revolutionize how businesses operate", Position: [3]float64{0, 2, 0}, Color: "#a855f7"},
			{ID: "creative-ai", Title: "Creative AI Tools", Description: "Developing AI that enhances human creativity in design, art, and content creation", Position: [3]float64{-3, 0, 1}, Color: "#06b6d4"},
			{ID: "3d-ai", Title: "3D + AI Integration", Description: "Merging 3D design workflows with AI to create immersive digital experiences", Position: [3]float64{3, 0, -1}, Color: "#3b82f6"},
			{ID: "education-platform", Title: "AI Education Platform", Description: "Creating accessible learning platforms that teach AI concepts through interactive experiences", Position: [3]float64{0, -2, 1}, Color: "#f59e0b"},
			{ID: "research-lab", Title: "Applied AI Research", Description: "Contributing to AI research focused on practical applications and ethical development", Position: [3]float64{-2, 1, -2}, Color: "#ef4444"},
			{ID: "community", Title: "Tech Community", Description: "Building and nurturing communities of creators, developers, and AI enthusiasts", Position: [3]float64{2, -1, 2}, Color: "#10b981"},
		},
		Thoughts: []Thought{
			{ID: "1", Content: "The best AI doesn't just process data—it understands context, nuance, and the spaces between words.", Posted: "2 hours ago", Tags: []string{"AI", "philosophy", "understanding"}, Mood: MoodInsight},
			{ID: "2", Content: "Currently exploring neural style transfer for 3D environments. The possibilities for immersive art are endless.", Posted: "5 hours ago", Tags: []string{"3D", "neural-networks", "art"}, Mood: MoodIdea},
			{ID: "3", Content: "Every line of code is a choice. Every choice shapes the future. Choose wisely.", Posted: "1 day ago", Tags: []string{"programming", "responsibility", "future"}, Mood: MoodReflection},
			{ID: "4", Content: "What if we could make AI collaboration feel as natural as having a conversation with a friend?", Posted: "2 days ago", Tags: []string{"UX", "AI", "human-computer-interaction"}, Mood: MoodVision},
			{ID: "5", Content: "The intersection of creativity and logic is where the most interesting problems get solved.", Posted: "3 days ago", Tags: []string{"creativity", "logic", "problem-solving"}, Mood: MoodInsight},
			{ID: "6", Content: "Building my first autonomous 3D world generator. Teaching AI to dream in polygons and textures.", Posted: "4 days ago", Tags: []string{"generative-AI", "3D", "automation"}, Mood: MoodIdea},
			{ID: "7", Content: "The future isn't about humans vs AI. It's about humans + AI creating what neither could alone.", Posted: "1 week ago", Tags: []string{"collaboration", "future", "augmentation"}, Mood: MoodVision},
			{ID: "8", Content: "Debugging is just another word for digital detective work. And I love a good mystery.", Posted: "1 week ago", Tags: []string{"debugging", "programming", "mindset"}, Mood: MoodReflection},
		},
		Collaborations: []Collaboration{
			{Title: "AI Project Collaboration", Description: "Joint ventures in machine learning, computer vision, or NLP projects", Timeline: "2-6 months", Commitment: "Part-time to Full-time"},
			{Title: "3D + AI Innovation", Description: "Exploring the intersection of 3D design and artificial intelligence", Timeline: "1-4 months", Commitment: "Project-based"},
			{Title: "Startup Co-founding", Description: "Building the next generation of AI-powered solutions together", Timeline: "Long-term", Commitment: "Full-time partnership"},
			{Title: "Consulting & Mentorship", Description: "Strategic guidance on AI implementation and technical direction", Timeline: "Flexible", Commitment: "Advisory role"},
		},
		Footer: "Designing the future with AI & imagination. Building tomorrow's technology today.",
	}
}
