package course

// catalog is the closed set of courses the bot can teach. Course IDs act
// as an enum: anything not listed here is rejected at the boundary with
// ErrUnknownCourse rather than producing empty results downstream.
var catalog = map[string]Course{
	"python-basics": {
		ID:          "python-basics",
		Name:        "Python Basics",
		Description: "Fundamental Python programming concepts",
		Topics: []string{
			"Variables and Data Types",
			"Control Flow (if/else, loops)",
			"Functions and Parameters",
			"Lists and Dictionaries",
			"String Manipulation",
			"File Operations",
			"Error Handling",
			"Object-Oriented Programming Basics",
		},
		Difficulties: []Difficulty{DifficultyBeginner, DifficultyIntermediate},
	},
	"javascript-intro": {
		ID:          "javascript-intro",
		Name:        "JavaScript Introduction",
		Description: "JavaScript fundamentals for web development",
		Topics: []string{
			"Variables (let, const, var)",
			"Functions and Arrow Functions",
			"Arrays and Objects",
			"DOM Manipulation",
			"Event Handling",
			"Promises and Async/Await",
			"ES6+ Features",
			"Basic Node.js",
		},
		Difficulties: []Difficulty{DifficultyBeginner, DifficultyIntermediate},
	},
	"data-science": {
		ID:          "data-science",
		Name:        "Data Science",
		Description: "Introduction to data science concepts",
		Topics: []string{
			"Data Types and Structures",
			"Statistics and Probability",
			"Pandas DataFrames",
			"Data Visualization",
			"Machine Learning Basics",
			"Data Cleaning",
			"NumPy Arrays",
			"Hypothesis Testing",
		},
		Difficulties: []Difficulty{DifficultyIntermediate, DifficultyAdvanced},
	},
	"web-dev": {
		ID:          "web-dev",
		Name:        "Web Development",
		Description: "Modern web development practices",
		Topics: []string{
			"HTML5 Semantics",
			"CSS3 and Flexbox",
			"Responsive Design",
			"JavaScript DOM",
			"RESTful APIs",
			"Git and Version Control",
			"Web Security Basics",
			"Performance Optimization",
		},
		Difficulties: []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced},
	},
}

// ids lists catalog keys in a stable display order.
var ids = []string{"python-basics", "javascript-intro", "data-science", "web-dev"}

// Get returns the course for the given ID, or ErrUnknownCourse.
func Get(id string) (Course, error) {
	c, ok := catalog[id]
	if !ok {
		return Course{}, &ErrUnknownCourse{ID: id}
	}
	return c, nil
}

// All returns every catalog course in display order.
func All() []Course {
	out := make([]Course, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog[id])
	}
	return out
}

// IDs returns the catalog course IDs in display order.
func IDs() []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
