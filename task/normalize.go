package task

// Normalize maps a raw API record into the display Task shape, preferring
// flat fields and falling back to the nested reference objects.
func Normalize(record Record) Task {
	normalized := Task{
		ID:            record.ID.String(),
		Content:       fallback(record.Content, placeholderContent),
		ChassisNumber: fallback(record.ChassisNumber, placeholderChassis),
		Remark:        record.Remark,
		CompFlag:      record.CompFlag,
		Completion:    record.Completion,
		WorkID:        record.WorkID,
		CarID:         record.CarID,
		ColorID:       record.ColorID,
		UserID:        record.UserID,
		AdminID:       record.AdminID,
		Name:          record.Name,
		Code:          record.Code,
		UserName:      record.UserName,
		AdminName:     record.AdminName,
	}

	if normalized.Name == "" && record.CarModel != nil {
		normalized.Name = record.CarModel.Name
	}
	if normalized.Code == "" && record.Color != nil {
		normalized.Code = record.Color.Code
	}
	if normalized.UserName == "" && record.User != nil {
		normalized.UserName = record.User.Name
	}
	if normalized.AdminName == "" && record.Admin != nil {
		normalized.AdminName = record.Admin.Name
	}

	normalized.Title = record.Title
	if normalized.Title == "" {
		normalized.Title = record.Name
	}
	if normalized.Title == "" && record.CarModel != nil {
		normalized.Title = record.CarModel.Name
	}
	if normalized.Title == "" {
		normalized.Title = PlaceholderTitle
	}

	return normalized
}

// NormalizeAll maps a list response into Tasks, preserving order.
func NormalizeAll(records []Record) []Task {
	tasks := make([]Task, 0, len(records))
	for _, record := range records {
		tasks = append(tasks, Normalize(record))
	}
	return tasks
}

func fallback(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
