package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vctasks/vct/internal/editor"
	"github.com/vctasks/vct/task"
)

// confirmPrompter asks before completing or deleting a task. Tests swap it
// out.
var confirmPrompter task.Prompter = task.StdioPrompter{}

// vct list
var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskList,
}

var (
	taskListDate string
	taskListJSON bool
)

// vct show
var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskShowJSON bool

// vct create
var taskCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new task",
	Long: `Register a new task.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no create flags are provided. Use --no-edit
to skip the editor, or --edit to force opening the editor even when not interactive.`,
	Args: cobra.NoArgs,
	RunE: runTaskCreate,
}

var (
	taskCreateWork       int
	taskCreateCar        int
	taskCreateColor      int
	taskCreateUser       int
	taskCreateChassis    string
	taskCreateCompletion string
	taskCreateRemark     string
	taskCreateEdit       bool
	taskCreateNoEdit     bool
)

// vct update
var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Long: `Update a task. The submitted record fully replaces the stored one.

By default, opens $EDITOR pre-populated with the current values when
running interactively and no update flags are provided. Use --no-edit to
skip the editor, or --edit to force opening the editor even when not
interactive.`,
	Aliases: []string{
		"edit",
	},
	Args: cobra.ExactArgs(1),
	RunE: runTaskUpdate,
}

var (
	taskUpdateWork       int
	taskUpdateCar        int
	taskUpdateColor      int
	taskUpdateUser       int
	taskUpdateChassis    string
	taskUpdateCompletion string
	taskUpdateRemark     string
	taskUpdateEdit       bool
	taskUpdateNoEdit     bool
)

// vct complete
var taskCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskComplete,
}

var taskCompleteYes bool

// vct delete
var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDelete,
}

var taskDeleteYes bool

// vct masters
var taskMastersCmd = &cobra.Command{
	Use:   "masters",
	Short: "Show the master-data reference tables",
	Args:  cobra.NoArgs,
	RunE:  runTaskMasters,
}

var taskMastersJSON bool

func init() {
	rootCmd.AddCommand(taskListCmd, taskShowCmd, taskCreateCmd, taskUpdateCmd,
		taskCompleteCmd, taskDeleteCmd, taskMastersCmd)

	// list flags
	taskListCmd.Flags().StringVar(&taskListDate, "date", "", "Filter to a single date (YYYY-MM-DD)")
	taskListCmd.Flags().BoolVar(&taskListJSON, "json", false, "Output as JSON")

	// show flags
	taskShowCmd.Flags().BoolVar(&taskShowJSON, "json", false, "Output as JSON")

	// create flags
	taskCreateCmd.Flags().IntVarP(&taskCreateWork, "work", "w", 0, "Work type id (see 'vct masters')")
	taskCreateCmd.Flags().IntVar(&taskCreateCar, "car", 0, "Car model id")
	taskCreateCmd.Flags().IntVar(&taskCreateColor, "color", 0, "Color id")
	taskCreateCmd.Flags().IntVarP(&taskCreateUser, "user", "u", 0, "Assigned user id")
	taskCreateCmd.Flags().StringVar(&taskCreateChassis, "chassis", "", "Chassis number (8 digits)")
	taskCreateCmd.Flags().StringVar(&taskCreateCompletion, "completion", "", "Completion date (YYYY-MM-DD, default today)")
	taskCreateCmd.Flags().StringVarP(&taskCreateRemark, "remark", "r", "", "Free-text remark")
	taskCreateCmd.Flags().BoolVarP(&taskCreateEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no create flags)")
	taskCreateCmd.Flags().BoolVar(&taskCreateNoEdit, "no-edit", false, "Do not open $EDITOR")

	// update flags
	taskUpdateCmd.Flags().IntVarP(&taskUpdateWork, "work", "w", 0, "New work type id")
	taskUpdateCmd.Flags().IntVar(&taskUpdateCar, "car", 0, "New car model id")
	taskUpdateCmd.Flags().IntVar(&taskUpdateColor, "color", 0, "New color id")
	taskUpdateCmd.Flags().IntVarP(&taskUpdateUser, "user", "u", 0, "New assigned user id")
	taskUpdateCmd.Flags().StringVar(&taskUpdateChassis, "chassis", "", "New chassis number (8 digits)")
	taskUpdateCmd.Flags().StringVar(&taskUpdateCompletion, "completion", "", "New completion date (YYYY-MM-DD)")
	taskUpdateCmd.Flags().StringVarP(&taskUpdateRemark, "remark", "r", "", "New free-text remark")
	taskUpdateCmd.Flags().BoolVarP(&taskUpdateEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	taskUpdateCmd.Flags().BoolVar(&taskUpdateNoEdit, "no-edit", false, "Do not open $EDITOR")

	addDraftFlagAliases(taskCreateCmd, taskUpdateCmd)

	// complete flags
	taskCompleteCmd.Flags().BoolVarP(&taskCompleteYes, "yes", "y", false, "Skip the confirmation prompt")

	// delete flags
	taskDeleteCmd.Flags().BoolVarP(&taskDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	// masters flags
	taskMastersCmd.Flags().BoolVar(&taskMastersJSON, "json", false, "Output as JSON")
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, _, err := newStore()
	if err != nil {
		return err
	}

	if err := store.FetchTasks(cmd.Context(), taskListDate); err != nil {
		return storeError(store, err)
	}

	tasks := store.Tasks()
	if taskListJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encodeJSONToStdout(tasks)
	}
	printTaskTable(tasks)
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	record, err := client.GetTask(cmd.Context(), args[0])
	if err != nil {
		return errors.New(task.FormatError(task.OpFetch, err))
	}

	t := task.Normalize(record)
	if taskShowJSON {
		return encodeJSONToStdout(t)
	}
	fmt.Print(formatTaskDetail(t))
	return nil
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	store, client, err := newStore()
	if err != nil {
		return err
	}

	master, err := client.MasterData(cmd.Context())
	if err != nil {
		return errors.New(task.FormatError(task.OpFetch, err))
	}

	hasFlags := hasChangedFlags(cmd, "work", "car", "color", "user", "chassis", "completion", "remark")
	useEditor := shouldUseEditor(hasFlags, taskCreateEdit, taskCreateNoEdit, editor.IsInteractive())

	var draft task.Draft
	if useEditor {
		data := editor.DefaultCreateData(master, time.Now())
		applyCreateFlags(cmd, &data)

		parsed, err := editor.EditDraft(data)
		if err != nil {
			return err
		}
		draft = parsed.ToDraft(master)
	} else {
		completion := taskCreateCompletion
		if completion == "" {
			completion = time.Now().Format(task.DateLayout)
		}
		draft = task.Draft{
			WorkID:        taskCreateWork,
			CarID:         taskCreateCar,
			ColorID:       taskCreateColor,
			UserID:        taskCreateUser,
			ChassisNumber: taskCreateChassis,
			Remark:        taskCreateRemark,
			Completion:    completion,
		}
		draft.ResolveNames(master)
	}

	if err := store.CreateTask(cmd.Context(), draft); err != nil {
		return storeError(store, err)
	}
	printStoreNotice(store)
	return nil
}

func applyCreateFlags(cmd *cobra.Command, data *editor.DraftData) {
	if cmd.Flags().Changed("work") {
		data.WorkID = taskCreateWork
	}
	if cmd.Flags().Changed("car") {
		data.CarID = taskCreateCar
	}
	if cmd.Flags().Changed("color") {
		data.ColorID = taskCreateColor
	}
	if cmd.Flags().Changed("user") {
		data.UserID = taskCreateUser
	}
	if cmd.Flags().Changed("chassis") {
		data.ChassisNumber = taskCreateChassis
	}
	if cmd.Flags().Changed("completion") {
		data.Completion = taskCreateCompletion
	}
	if cmd.Flags().Changed("remark") {
		data.Remark = taskCreateRemark
	}
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	store, client, err := newStore()
	if err != nil {
		return err
	}

	id := args[0]
	record, err := client.GetTask(cmd.Context(), id)
	if err != nil {
		return errors.New(task.FormatError(task.OpFetch, err))
	}
	existing := task.Normalize(record)

	master, err := client.MasterData(cmd.Context())
	if err != nil {
		return errors.New(task.FormatError(task.OpFetch, err))
	}

	hasFlags := hasChangedFlags(cmd, "work", "car", "color", "user", "chassis", "completion", "remark")
	useEditor := shouldUseEditor(hasFlags, taskUpdateEdit, taskUpdateNoEdit, editor.IsInteractive())

	var draft task.Draft
	if useEditor {
		data := editor.DataFromTask(existing)
		applyUpdateFlags(cmd, &data)

		parsed, err := editor.EditDraft(data)
		if err != nil {
			return err
		}
		draft = parsed.ToDraft(master)
	} else {
		if !hasFlags {
			return fmt.Errorf("no update flags given (use --edit to open the editor)")
		}
		draft = draftWithUpdateFlags(cmd, existing)
		draft.ResolveNames(master)
	}

	if err := store.UpdateTask(cmd.Context(), id, draft); err != nil {
		return storeError(store, err)
	}
	printStoreNotice(store)
	return nil
}

func applyUpdateFlags(cmd *cobra.Command, data *editor.DraftData) {
	if cmd.Flags().Changed("work") {
		data.WorkID = taskUpdateWork
	}
	if cmd.Flags().Changed("car") {
		data.CarID = taskUpdateCar
	}
	if cmd.Flags().Changed("color") {
		data.ColorID = taskUpdateColor
	}
	if cmd.Flags().Changed("user") {
		data.UserID = taskUpdateUser
	}
	if cmd.Flags().Changed("chassis") {
		data.ChassisNumber = taskUpdateChassis
	}
	if cmd.Flags().Changed("completion") {
		data.Completion = taskUpdateCompletion
	}
	if cmd.Flags().Changed("remark") {
		data.Remark = taskUpdateRemark
	}
}

func draftWithUpdateFlags(cmd *cobra.Command, existing task.Task) task.Draft {
	draft := task.DraftFromTask(existing)
	if cmd.Flags().Changed("work") {
		draft.WorkID = taskUpdateWork
	}
	if cmd.Flags().Changed("car") {
		draft.CarID = taskUpdateCar
	}
	if cmd.Flags().Changed("color") {
		draft.ColorID = taskUpdateColor
	}
	if cmd.Flags().Changed("user") {
		draft.UserID = taskUpdateUser
	}
	if cmd.Flags().Changed("chassis") {
		draft.ChassisNumber = taskUpdateChassis
	}
	if cmd.Flags().Changed("completion") {
		draft.Completion = taskUpdateCompletion
	}
	if cmd.Flags().Changed("remark") {
		draft.Remark = taskUpdateRemark
	}
	return draft
}

func runTaskComplete(cmd *cobra.Command, args []string) error {
	return runConfirmedOperation(cmd, args[0], taskCompleteYes, (*task.Store).RequestComplete)
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	return runConfirmedOperation(cmd, args[0], taskDeleteYes, (*task.Store).RequestDelete)
}

func runConfirmedOperation(cmd *cobra.Command, id string, skipPrompt bool, stage func(*task.Store, string) task.ConfirmRequest) error {
	store, _, err := newStore()
	if err != nil {
		return err
	}

	request := stage(store, id)
	if !skipPrompt {
		confirmed, err := confirmPrompter.Confirm(request.Message)
		if err != nil {
			return err
		}
		if !confirmed {
			store.CancelPending()
			fmt.Println("Cancelled.")
			return nil
		}
	}

	notice, err := store.ConfirmPending(cmd.Context())
	if err != nil {
		if notice.Message != "" {
			return errors.New(notice.Message)
		}
		return err
	}
	fmt.Println(notice.Message)
	return nil
}

func runTaskMasters(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	master, err := client.MasterData(cmd.Context())
	if err != nil {
		return errors.New(task.FormatError(task.OpFetch, err))
	}

	if taskMastersJSON {
		return encodeJSONToStdout(master)
	}
	fmt.Print(formatMasterTables(master))
	return nil
}

// storeError prefers the store's formatted message over the raw wrapped
// error so the CLI surfaces the same text the screens would.
func storeError(store *task.Store, err error) error {
	if msg := store.Err(); msg != "" {
		return errors.New(msg)
	}
	return err
}

func printStoreNotice(store *task.Store) {
	notice := store.Notice()
	if notice == nil {
		return
	}
	fmt.Println(notice.Message)
	store.ClearNotice()
}
