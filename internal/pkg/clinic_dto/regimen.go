package clinic_dto

type Regimen struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	RegimenType  string `json:"regimenType"`
	ComponentID1 *int   `json:"componentId1"`
	ComponentID2 *int   `json:"componentId2"`
	ComponentID3 *int   `json:"componentId3"`
	ComponentID4 *int   `json:"componentId4"`
	SideEffects  string `json:"sideEffects"`
	Usage        string `json:"usage"`
	Frequency    string `json:"frequency"`
	PatientID    *int   `json:"patientId,omitempty"`
	IsActive     bool   `json:"isActive"`
}

// ComponentIDs returns the non-empty component slots in order.
func (r *Regimen) ComponentIDs() []int {
	ids := make([]int, 0, 4)
	for _, id := range []*int{r.ComponentID1, r.ComponentID2, r.ComponentID3, r.ComponentID4} {
		if id != nil && *id > 0 {
			ids = append(ids, *id)
		}
	}
	return ids
}

// SetComponentIDs fills the four component slots, leaving unused ones null.
func (r *Regimen) SetComponentIDs(ids []int) {
	slots := []**int{&r.ComponentID1, &r.ComponentID2, &r.ComponentID3, &r.ComponentID4}
	for i, slot := range slots {
		*slot = nil
		if i < len(ids) {
			id := ids[i]
			*slot = &id
		}
	}
}

type Component struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DosageForm  string `json:"dosageForm,omitempty"`
	Strength    string `json:"strength,omitempty"`
	IsActive    bool   `json:"isActive"`
}
