package task

// Draft is the payload submitted when creating or replacing a task. Updates
// are full-record replacements, so the same shape serves both.
type Draft struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Name          string `json:"name"`
	ChassisNumber string `json:"chassis_number"`
	UserName      string `json:"u_name,omitempty"`
	WorkID        int    `json:"work_id"`
	CarID         int    `json:"car_id"`
	ColorID       int    `json:"color_id"`
	UserID        int    `json:"user_id"`
	Remark        string `json:"remark,omitempty"`
	Completion    string `json:"completion"`
}

// Display-name fallbacks used when a selected id is missing from the master
// bundle.
const (
	unknownWork = "Unknown work"
	unknownCar  = "Unknown car model"
	unknownUser = "Unknown user"
)

// ResolveNames fills the draft's display fields (title, content, car model
// name, user name) from the master-data bundle based on the selected ids.
// Missing master records resolve to fixed "unknown" placeholders rather than
// failing; the server re-resolves names on its side anyway.
func (d *Draft) ResolveNames(master MasterData) {
	work, ok := FindItem(master.Works, d.WorkID)
	if ok && work.Content != "" {
		d.Title = work.Content
		d.Content = work.Content
	} else {
		d.Title = unknownWork
		d.Content = unknownWork
	}

	if car, ok := FindItem(master.CarModels, d.CarID); ok && car.Name != "" {
		d.Name = car.Name
	} else {
		d.Name = unknownCar
	}

	if user, ok := FindItem(master.Users, d.UserID); ok && user.Name != "" {
		d.UserName = user.Name
	} else {
		d.UserName = unknownUser
	}
}

// DraftFromTask seeds an update draft from an existing task.
func DraftFromTask(t Task) Draft {
	return Draft{
		Title:         t.Title,
		Content:       t.Content,
		Name:          t.Name,
		ChassisNumber: t.ChassisNumber,
		UserName:      t.UserName,
		WorkID:        t.WorkID,
		CarID:         t.CarID,
		ColorID:       t.ColorID,
		UserID:        t.UserID,
		Remark:        t.Remark,
		Completion:    t.Completion,
	}
}
