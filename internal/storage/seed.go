package storage

import (
	"time"

	"github.com/prateekh777/AIInterviewV4-0/internal/model"
)

func strPtr(s string) *string { return &s }

// SampleJobs returns the demo posting set, backdated one day apart so the
// recency ordering is deterministic: the first entry is the newest.
func SampleJobs() []model.Job {
	now := time.Now()
	jobs := []model.Job{
		{
			Title:              "UI / UX Designer",
			Company:            "Laborum",
			Location:           "Tucson, AZ",
			Salary:             strPtr("$95K - $120K"),
			Description:        "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Lorem ipsum dolorem sed lacinia quos. Nabi vestibulum elittu iaculis dolor velit in vel majgna arcu sit leo. In honcus maet donec vehicula sed pellentesque sit quis eu, facilisi. Id Ac magna congue eleifend ult erat sit sed ultrices dolor accumsan dis. Id quam.",
			Responsibilities:   "Conduct user research to inform design decisions\nConsectetur adipiscing elit. Lorem ipsum dolor sed lacinia quos.\nIn honcus maet donec vehicula sed pellentesque sit quis eu, faccilsi.\nId ac magna congue eleifend ultricies erat sit sed ultrices dolor.",
			CompanyDescription: "Quibusdam velit consequunt ex error ullam et ad ut sure dillore quas adipisum sed. Lorem ipsum dolor. Ut non minim dolor duis aute culpa eu enim. Et velit culpa do minum laborem esse sint auta ullum ea tempor dolore ad.",
			JobType:            "Full-time",
			WorkType:           "Onsite",
			ExperienceLevel:    "Mid-level",
			CompanySize:        strPtr("100 - 250 employees"),
			CompanyLogo:        strPtr("bezier-curve"),
		},
		{
			Title:              "Senior UX/UI Designer",
			Company:            "Laborum",
			Location:           "Columbus, OH",
			Salary:             strPtr("$110K - $135K"),
			Description:        "Looking for an experienced UX/UI Designer to lead design projects and work closely with our product and development teams. The ideal candidate will have a strong portfolio demonstrating expertise in user-centered design methodologies.",
			Responsibilities:   "Lead the design process from concept to implementation\nCreate wireframes, prototypes, and high-fidelity mockups\nConduct user research and usability testing\nCollaborate with cross-functional teams to deliver cohesive product experiences",
			CompanyDescription: "At Laborum, we're dedicated to creating innovative solutions that improve people's lives. Our talented team works in a collaborative environment where creativity and problem-solving are valued.",
			JobType:            "Full-time",
			WorkType:           "Hybrid",
			ExperienceLevel:    "Senior-level",
			CompanySize:        strPtr("100 - 250 employees"),
			CompanyLogo:        strPtr("user-plus"),
		},
		{
			Title:              "UX Copywriter",
			Company:            "ABC",
			Location:           "Tulsa, OK",
			Salary:             strPtr("$70K - $85K"),
			Description:        "We're seeking a talented UX Copywriter to craft clear, concise, and user-friendly content for our digital products. You'll work alongside designers and developers to ensure our messaging aligns with our brand voice and user needs.",
			Responsibilities:   "Write clear, concise copy for websites, apps, and other digital products\nDevelop and maintain a consistent brand voice across all platforms\nCollaborate with design and product teams to create cohesive user experiences\nReview and edit content for clarity, grammar, and style",
			CompanyDescription: "ABC is a fast-growing tech company focused on creating intuitive digital experiences that simplify complex processes. We value creativity, collaboration, and a user-first approach to product development.",
			JobType:            "Full-time",
			WorkType:           "Remote",
			ExperienceLevel:    "Mid-level",
			CompanySize:        strPtr("50 - 100 employees"),
			CompanyLogo:        strPtr("font"),
		},
		{
			Title:              "UI / UX Designer",
			Company:            "Negotiate",
			Location:           "Denver, CO",
			Salary:             strPtr("Negotiable"),
			Description:        "Join our creative team as a UI/UX Designer where you'll help shape the future of our products. We're looking for someone who can blend beautiful interfaces with functional user experiences.",
			Responsibilities:   "Design intuitive user interfaces for web and mobile applications\nCreate user flows, wireframes, and prototypes\nConduct user research and incorporate feedback into design iterations\nCollaborate with developers to ensure design integrity during implementation",
			CompanyDescription: "Negotiate is a design-forward company that specializes in creating digital products that make life easier for our users. We believe in iterative design processes and continuous improvement.",
			JobType:            "Full-time",
			WorkType:           "Onsite",
			ExperienceLevel:    "Entry-level",
			CompanySize:        strPtr("25 - 50 employees"),
			CompanyLogo:        strPtr("pen-fancy"),
		},
		{
			Title:              "Product Designer",
			Company:            "TechSolutions Inc.",
			Location:           "New York, USA",
			Salary:             strPtr("$3,000 - $3,800"),
			Description:        "We are looking for a talented Product Designer to join our team and help create intuitive and visually appealing user experiences for our digital products. The ideal candidate will have a strong portfolio demonstrating both UX and UI skills.",
			Responsibilities:   "Create user-centered designs by understanding business requirements, user feedback, and research\nIllustrate design ideas using storyboards, process flows and sitemaps\nDesign graphic user interface elements, like menus, tabs and widgets\nBuild page navigation buttons and search fields",
			CompanyDescription: "TechSolutions Inc. is a leading technology company focused on creating innovative solutions that solve real-world problems. We have a collaborative and inclusive culture that values creativity and personal growth.",
			JobType:            "Full-time",
			WorkType:           "Remote",
			ExperienceLevel:    "Mid-level",
			CompanySize:        strPtr("250 - 500 employees"),
			CompanyLogo:        strPtr("bezier-curve"),
		},
	}

	for i := range jobs {
		jobs[i].PostedDate = now.Add(-time.Duration(i) * 24 * time.Hour)
	}
	return jobs
}

// SeedSampleJobs loads the sample job set into the given store.
func SeedSampleJobs(s Storage) error {
	for _, job := range SampleJobs() {
		if _, err := s.CreateJob(job); err != nil {
			return err
		}
	}
	return nil
}
