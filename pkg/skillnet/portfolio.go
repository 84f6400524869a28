package skillnet

// Category tags used by the built-in graph.
const (
	CategoryCenter     = "center"
	CategoryBackend    = "backend"
	CategoryCloud      = "cloud"
	CategoryAI         = "ai"
	CategoryLeadership = "leadership"
)

// Quadrant colours.
const (
	ColorGold  = "#ffd700"
	ColorGreen = "#39ff14"
	ColorBlue  = "#4a90e2"
	ColorRed   = "#ff6b6b"
)

// CenterID is the id of the hub node in the built-in graph.
const CenterID = "center"

// DefaultGraph returns the portfolio skills network. Offsets and radii are
// given for the 550x550 reference canvas.
func DefaultGraph() *Graph {
	g := NewGraph(CenterID)
	g.Name = "skills"

	g.AddNode(NodeSpec{ID: CenterID, Label: "B.M. Khashrul Alam", Size: 38, Color: ColorGold, Category: CategoryCenter})

	// Backend & systems, top-left
	g.AddNode(NodeSpec{ID: "laravel", Label: "Laravel", DX: -160, DY: -85, Size: 26, Color: ColorGreen, Category: CategoryBackend})
	g.AddNode(NodeSpec{ID: "microservices", Label: "Microservices", DX: -190, DY: -155, Size: 24, Color: ColorGreen, Category: CategoryBackend})
	g.AddNode(NodeSpec{ID: "restapi", Label: "REST APIs", DX: -120, DY: -35, Size: 24, Color: ColorGreen, Category: CategoryBackend})
	g.AddNode(NodeSpec{ID: "graphql", Label: "GraphQL", DX: -100, DY: -140, Size: 24, Color: ColorGreen, Category: CategoryBackend})
	g.AddNode(NodeSpec{ID: "php", Label: "PHP", DX: -220, DY: -110, Size: 20, Color: ColorGreen, Category: CategoryBackend})
	g.AddNode(NodeSpec{ID: "mysql", Label: "MySQL", DX: -220, DY: -50, Size: 20, Color: ColorGreen, Category: CategoryBackend})
	g.AddNode(NodeSpec{ID: "redis", Label: "Redis", DX: -130, DY: -160, Size: 20, Color: ColorGreen, Category: CategoryBackend})

	// Cloud & DevOps, top-right
	g.AddNode(NodeSpec{ID: "aws", Label: "AWS", DX: 180, DY: -110, Size: 24, Color: ColorBlue, Category: CategoryCloud})
	g.AddNode(NodeSpec{ID: "docker", Label: "Docker", DX: 150, DY: -65, Size: 20, Color: ColorBlue, Category: CategoryCloud})
	g.AddNode(NodeSpec{ID: "elk", Label: "ELK Stack", DX: 200, DY: -160, Size: 20, Color: ColorBlue, Category: CategoryCloud})
	g.AddNode(NodeSpec{ID: "kubernetes", Label: "Kubernetes", DX: 230, DY: -65, Size: 20, Color: ColorBlue, Category: CategoryCloud})
	g.AddNode(NodeSpec{ID: "cicd", Label: "CI/CD", DX: 180, DY: -25, Size: 20, Color: ColorBlue, Category: CategoryCloud})

	// AI, bottom-left
	g.AddNode(NodeSpec{ID: "llms", Label: "LLMs", DX: -180, DY: 80, Size: 24, Color: ColorGold, Category: CategoryAI})
	g.AddNode(NodeSpec{ID: "rag", Label: "RAG Pipelines", DX: -200, DY: 145, Size: 22, Color: ColorGold, Category: CategoryAI})
	g.AddNode(NodeSpec{ID: "prompt", Label: "Prompt Engine", DX: -120, DY: 155, Size: 20, Color: ColorGold, Category: CategoryAI})
	g.AddNode(NodeSpec{ID: "aiintegration", Label: "AI Integration", DX: -150, DY: 110, Size: 22, Color: ColorGold, Category: CategoryAI})

	// Leadership, bottom-right
	g.AddNode(NodeSpec{ID: "systemdesign", Label: "System Design", DX: 170, DY: 80, Size: 24, Color: ColorRed, Category: CategoryLeadership})
	g.AddNode(NodeSpec{ID: "mentoring", Label: "Mentoring", DX: 220, DY: 80, Size: 20, Color: ColorRed, Category: CategoryLeadership})
	g.AddNode(NodeSpec{ID: "agile", Label: "Agile/Scrum", DX: 220, DY: 145, Size: 24, Color: ColorRed, Category: CategoryLeadership})
	g.AddNode(NodeSpec{ID: "leadership", Label: "Team Leadership", DX: 170, DY: 155, Size: 22, Color: ColorRed, Category: CategoryLeadership})

	// Hub: every satellite connects to the center
	g.Connect("laravel", "microservices", "php", "mysql", "restapi", "graphql", "redis")
	g.Connect("aws", "docker", "kubernetes", "elk", "cicd")
	g.Connect("llms", "rag", "prompt", "aiintegration")
	g.Connect("systemdesign", "mentoring", "agile", "leadership")

	// Backend cluster
	g.AddEdge("laravel", "microservices")
	g.AddEdge("laravel", "php")
	g.AddEdge("laravel", "mysql")
	g.AddEdge("laravel", "redis")
	g.AddEdge("laravel", "restapi")
	g.AddEdge("laravel", "graphql")
	g.AddEdge("microservices", "php")
	g.AddEdge("php", "mysql")
	g.AddEdge("redis", "restapi")
	g.AddEdge("restapi", "graphql")

	// Cloud cluster
	g.AddEdge("aws", "elk")
	g.AddEdge("aws", "docker")
	g.AddEdge("aws", "kubernetes")
	g.AddEdge("docker", "kubernetes")
	g.AddEdge("docker", "cicd")
	g.AddEdge("kubernetes", "cicd")

	// AI cluster
	g.AddEdge("llms", "prompt")
	g.AddEdge("llms", "aiintegration")
	g.AddEdge("prompt", "aiintegration")

	// Leadership cluster
	g.AddEdge("systemdesign", "mentoring")
	g.AddEdge("systemdesign", "agile")
	g.AddEdge("systemdesign", "leadership")
	g.AddEdge("mentoring", "agile")
	g.AddEdge("agile", "leadership")

	return g
}
