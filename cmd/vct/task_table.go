package main

import (
	"fmt"

	"github.com/vctasks/vct/internal/ui"
	"github.com/vctasks/vct/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}
	fmt.Print(formatTaskTable(tasks))
}

func formatTaskTable(tasks []task.Task) string {
	builder := ui.NewTableBuilder([]string{"ID", "DONE", "TITLE", "CHASSIS", "USER", "DATE"}, len(tasks))

	for _, t := range tasks {
		done := "-"
		if t.IsCompleted() {
			done = "x"
		}
		date := "-"
		if completion, ok := t.CompletionDate(); ok {
			date = task.DateKey(completion)
		}
		builder.AddRow([]string{
			t.ID,
			done,
			ui.TruncateTableCell(t.Title),
			t.ChassisNumber,
			ui.TruncateTableCell(t.UserName),
			date,
		})
	}

	return builder.String()
}

func formatMasterTables(master task.MasterData) string {
	out := ui.Bold("WORKS") + "\n"
	works := ui.NewTableBuilder([]string{"ID", "CONTENT"}, len(master.Works))
	for _, item := range master.Works {
		works.AddRow([]string{fmt.Sprint(item.ID), ui.TruncateTableCell(item.Content)})
	}
	out += works.String()

	out += "\n" + ui.Bold("CAR MODELS") + "\n"
	cars := ui.NewTableBuilder([]string{"ID", "NAME", "NUMBER"}, len(master.CarModels))
	for _, item := range master.CarModels {
		cars.AddRow([]string{fmt.Sprint(item.ID), ui.TruncateTableCell(item.Name), item.Number})
	}
	out += cars.String()

	out += "\n" + ui.Bold("COLORS") + "\n"
	colors := ui.NewTableBuilder([]string{"ID", "CODE", "COLOR CODE"}, len(master.Colors))
	for _, item := range master.Colors {
		colors.AddRow([]string{fmt.Sprint(item.ID), item.Code, item.ColorCode})
	}
	out += colors.String()

	out += "\n" + ui.Bold("USERS") + "\n"
	users := ui.NewTableBuilder([]string{"ID", "NAME"}, len(master.Users))
	for _, item := range master.Users {
		users.AddRow([]string{fmt.Sprint(item.ID), ui.TruncateTableCell(item.Name)})
	}
	out += users.String()

	return out
}
