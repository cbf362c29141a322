package domain

// Question is a single checklist item. Questions are defined once in the
// built-in schema and never created or destroyed at runtime.
type Question struct {
	// ID is the stable identifier used in answer storage and submission.
	ID string
	// Text is the question shown to the inspector.
	Text string
}

// Category groups an ordered run of questions under a section heading.
type Category struct {
	// Name is the unique section heading.
	Name string
	// Questions in declaration order. This order is the wire order.
	Questions []Question
}

// Schema is the fixed, ordered catalog of categories and questions that
// defines the shape of every inspection. Category and question order is
// significant: it drives both the summary panel and the serialized
// answer array in a submission.
type Schema []Category

// QuestionCount returns the total number of questions across all categories.
func (s Schema) QuestionCount() int {
	n := 0
	for _, c := range s {
		n += len(c.Questions)
	}
	return n
}

// HasQuestion reports whether the given id belongs to the schema.
func (s Schema) HasQuestion(id string) bool {
	for _, c := range s {
		for _, q := range c.Questions {
			if q.ID == id {
				return true
			}
		}
	}
	return false
}

// QuestionIDs returns all question ids in schema order.
func (s Schema) QuestionIDs() []string {
	ids := make([]string, 0, s.QuestionCount())
	for _, c := range s {
		for _, q := range c.Questions {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// Category returns the named category, or nil if it does not exist.
func (s Schema) Category(name string) *Category {
	for i := range s {
		if s[i].Name == name {
			return &s[i]
		}
	}
	return nil
}

// DefaultSchema returns the built-in workplace inspection checklist.
func DefaultSchema() Schema {
	return Schema{
		{
			Name: "ADMINISTRATIVE",
			Questions: []Question{
				{ID: "q1", Text: "Is the workplace inspected on a daily, weekly, and monthly basis?"},
				{ID: "q2", Text: "Is safety discussed in program and staff meetings/general assemblies?"},
				{ID: "q3", Text: "Is fundamental safety and emergency protocols taught to all health workers and personnel?"},
				{ID: "q4", Text: "Are all evacuation maps and emergency protocols clearly visible at all entrances and exits?"},
			},
		},
		{
			Name: "PERSONAL PROTECTIVE EQUIPMENT",
			Questions: []Question{
				{ID: "q5", Text: "Are workers wearing the appropriate PPE for the area and the activity being done?"},
				{ID: "q6", Text: "Is there enough PPE on site for all job types?"},
				{ID: "q7", Text: "Are all personnel trained in the proper use of all PPE as required by their occupation?"},
				{ID: "q8", Text: "Is signage displayed in areas where PPE is required?"},
			},
		},
		{
			Name: "WALKING/WORKING SURFACES",
			Questions: []Question{
				{ID: "q9", Text: "Are the work spaces and restroom flooring free of slippery hazards?"},
				{ID: "q10", Text: "Are aisles and passageways kept clear and free of tripping hazards?"},
				{ID: "q11", Text: "Are stairwells and corridors free of any obstructions?"},
			},
		},
		{
			Name: "MEANS OF EGRESS, DOORS, FIRE PROTECTION",
			Questions: []Question{
				{ID: "q12", Text: "Is there a sufficient number of exits in the workplace?"},
				{ID: "q13", Text: "Are all egress doors clear, marked, and functional?"},
				{ID: "q14", Text: "Do all exits provide free and unobstructed egress from all parts of the building?"},
				{ID: "q15", Text: "Are all doorways and hallways unobstructed?"},
				{ID: "q16", Text: "Are all exit signs provided with artificial illumination?"},
			},
		},
		{
			Name: "HOUSEKEEPING",
			Questions: []Question{
				{ID: "q17", Text: "Are work areas and restrooms routinely cleaned?"},
				{ID: "q18", Text: "Is the work area neat and organized?"},
				{ID: "q19", Text: "Are garbage bins available in the workplace?"},
				{ID: "q20", Text: "Is garbage collected on a regular basis?"},
			},
		},
		{
			Name: "MATERIAL/EQUIPMENT HANDLING AND STORAGE",
			Questions: []Question{
				{ID: "q21", Text: "Are materials/equipment stored  in a stable and secure manner?"},
				{ID: "q22", Text: "Are all equipment in the area in full functional condition?"},
				{ID: "q23", Text: "Are all storage areas organized and labelled?"},
				{ID: "q24", Text: "Are tools safely secured and stored when not in use?"},
				{ID: "q25", Text: "Are storage areas kept free of tripping, fire, explosion hazards, or pest harborage?"},
				{ID: "q26", Text: "Are flamable liquids and gases being stored properly in approved containers and/or storage cabinets?"},
				{ID: "q27", Text: "Are containers properly labeled (identity and hazard warning)?"},
				{ID: "q28", Text: "Are all equipment requiring PMS being implemented?"},
			},
		},
		{
			Name: "FIRE PROTECTION",
			Questions: []Question{
				{ID: "q29", Text: "Are all portable fire extinguishers fully charged and ready to use?"},
				{ID: "q30", Text: "Are the fire extinguishers clearly visible with a wall-mounted sign?"},
				{ID: "q31", Text: "Are the fire extinguishers wall mounted and easily accessible?"},
				{ID: "q32", Text: "Are fire extinguishers inspected monthly?"},
				{ID: "q33", Text: "Are inspection tags current with initial and date of inspection?"},
				{ID: "q34", Text: "Are all staff members knowledgeable in fire extinguisher use?"},
				{ID: "q35", Text: "Are all employees aware of where the fire extinguishers are located in the workplace?"},
				{ID: "q36", Text: "Flamable materials such as cardboard and paper are stored away from fire hazards?"},
			},
		},
		{
			Name: "ELECTRICAL",
			Questions: []Question{
				{ID: "q37", Text: "Are extension cords used without splicing or tapping?"},
				{ID: "q38", Text: "Is there NO extension cord connected to another extension cord?"},
				{ID: "q39", Text: "Are all male electrical plugs and cords in good condition?"},
				{ID: "q40", Text: "Is there no sign of tripping in the circuit breaker of the work area?"},
				{ID: "q41", Text: "Are electrical switches, switch plates, or receptacles free of cracks, breaks, burns or exposed contacts?"},
				{ID: "q42", Text: "Are there no exposed wiring observed?"},
				{ID: "q43", Text: "Are light-switches and circuit breakers in working condition, properly identified, and labeled?"},
			},
		},
		{
			Name: "SECURITY",
			Questions: []Question{
				{ID: "q44", Text: "Are all entry ways secured from unauthorized access?"},
				{ID: "q45", Text: "Are keys labelled and kept for all lockable doors?"},
				{ID: "q46", Text: "Are surveillance video cameras in working order?"},
			},
		},
		{
			Name: "GENERAL",
			Questions: []Question{
				{ID: "q47", Text: "Is the building or structure free from any obvious structural flaws that could endanger personnel or jeopardize structural integrity?"},
				{ID: "q48", Text: "Is adequate lighting provided in all work areas?"},
				{ID: "q49", Text: "Are water dispensers clean and in working order?"},
				{ID: "q50", Text: "Is the workplace free from leaks and other plumbing issues?"},
			},
		},
		{
			Name: "UNSAFE BEHAVIOUR",
			Questions: []Question{
				{ID: "q51", Text: "Are workers taking the necessary safety precautions for the work being performed?"},
				{ID: "q52", Text: "Is work being done in such a way that other workers in the vicinity are not exposed to occupational health hazards or dangerous working conditions?"},
				{ID: "q53", Text: "No other unsafe behavior/act observed at the time of the inspection?"},
			},
		},
		{
			Name: "REVIEW PRIOR CORRECTION",
			Questions: []Question{
				{ID: "q54", Text: "Have all issues raised in the last facility inspection summary been addressed and documented?"},
				{ID: "q55", Text: "Are all adjustments to previously recognized isuues still effective and do not reoccur?"},
			},
		},
	}
}
