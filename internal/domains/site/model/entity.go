package model

// Content là toàn bộ nội dung tĩnh của landing page
type Content struct {
	Hero        Hero        `yaml:"hero" json:"hero"`
	About       About       `yaml:"about" json:"about"`
	Roles       []Role      `yaml:"roles" json:"roles"`
	Benefits    []Item      `yaml:"benefits" json:"benefits"`
	Eligibility []string    `yaml:"eligibility" json:"eligibility"`
	TechAreas   []TechArea  `yaml:"techAreas" json:"techAreas"`
	Innovations []Item      `yaml:"innovations" json:"innovations"`
	Milestones  []Milestone `yaml:"milestones" json:"milestones"`

	// số role còn trống, tính lúc trả về
	OpenPositions int `yaml:"-" json:"openPositions"`
}

type Hero struct {
	Badge    string `yaml:"badge" json:"badge"`
	Title    string `yaml:"title" json:"title"`
	Tagline  string `yaml:"tagline" json:"tagline"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Stats    Stats  `yaml:"stats" json:"stats"`
}

type Stats struct {
	Projects   int64 `yaml:"projects" json:"projects"`
	Hackathons int64 `yaml:"hackathons" json:"hackathons"`
	Members    int64 `yaml:"members" json:"members"`
}

type About struct {
	Mission string `yaml:"mission" json:"mission"`
	Vision  string `yaml:"vision" json:"vision"`
	Values  []Item `yaml:"values" json:"values"`
}

// Item dùng cho values, benefits, innovations
type Item struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Role struct {
	Title       string   `yaml:"title" json:"title"`
	Occupied    bool     `yaml:"occupied" json:"occupied"`
	Description string   `yaml:"description" json:"description"`
	Skills      []string `yaml:"skills" json:"skills"`
}

type TechArea struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
	Projects    []string `yaml:"projects" json:"projects"`
}

type Milestone struct {
	Year        string `yaml:"year" json:"year"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Status      string `yaml:"status" json:"status"` // completed, upcoming
}

// OpenRoles trả về các role chưa có người
func (c *Content) OpenRoles() []Role {
	open := make([]Role, 0, len(c.Roles))
	for _, r := range c.Roles {
		if !r.Occupied {
			open = append(open, r)
		}
	}
	return open
}
