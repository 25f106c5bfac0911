package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitpet/habitpet/backend/models"
	"github.com/habitpet/habitpet/backend/utils"
	"github.com/habitpet/habitpet/internal/domain/lifecycle"
	db "github.com/habitpet/habitpet/internal/gateways/database/models"
)

func TasksList(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}

		status := db.TaskStatus(c.Query("status"))
		switch status {
		case "", db.TaskOpen, db.TaskDone, db.TaskArchived:
		default:
			return &utils.ValidationError{Details: map[string]string{"status": "must be one of: open done archived"}}
		}

		list, err := app.Lifecycle.ListTasks(c.UserContext(), userID, lifecycle.ListFilter{
			Query:  c.Query("q"),
			Status: status,
		})
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewTaskViews(list), "")
	}
}

func TasksCreate(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}

		var req models.TaskCreateRequest
		if err := utils.BindJSON(c, &req); err != nil {
			return err
		}

		task, err := app.Lifecycle.CreateTask(c.UserContext(), userID, lifecycle.TaskInput{
			Title:           req.Title,
			Kind:            db.TaskKind(req.Kind),
			TrackingMode:    db.TrackingMode(req.TrackingMode),
			Difficulty:      db.Difficulty(req.Difficulty),
			RewardFoodCount: req.RewardFoodCount,
			TargetValue:     req.TargetValue,
			TargetUnit:      req.TargetUnit,
			TargetPeriod:    req.TargetPeriod,
			Tag:             req.Tag,
			DueOn:           req.DueOn,
			RepeatDays:      req.RepeatDays,
		})
		if err != nil {
			return err
		}
		return utils.SendCreated(c, models.NewTaskView(task), "Task created")
	}
}

func TasksDetail(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		id, err := taskID(c)
		if err != nil {
			return err
		}

		task, err := app.Lifecycle.GetTask(c.UserContext(), userID, id)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewTaskView(task), "")
	}
}

func TasksUpdate(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		id, err := taskID(c)
		if err != nil {
			return err
		}

		var req models.TaskUpdateRequest
		if err := utils.BindJSON(c, &req); err != nil {
			return err
		}

		patch := lifecycle.TaskPatch{
			Title:           req.Title,
			RewardFoodCount: req.RewardFoodCount,
			TargetValue:     req.TargetValue,
			TargetUnit:      req.TargetUnit,
			TargetPeriod:    req.TargetPeriod,
			Tag:             req.Tag,
			DueOn:           req.DueOn,
			RepeatDays:      req.RepeatDays,
		}
		if req.TrackingMode != nil {
			mode := db.TrackingMode(*req.TrackingMode)
			patch.TrackingMode = &mode
		}
		if req.Difficulty != nil {
			d := db.Difficulty(*req.Difficulty)
			patch.Difficulty = &d
		}

		task, err := app.Lifecycle.UpdateTask(c.UserContext(), userID, id, patch)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewTaskView(task), "Task updated")
	}
}

func TasksArchive(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		id, err := taskID(c)
		if err != nil {
			return err
		}

		task, err := app.Lifecycle.ArchiveTask(c.UserContext(), userID, id)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewTaskView(task), "Task archived")
	}
}

func TasksComplete(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		id, err := taskID(c)
		if err != nil {
			return err
		}

		outcome, err := app.Rewards.Complete(c.UserContext(), userID, id)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewOutcomeView(outcome), outcome.Notice)
	}
}

func TasksLog(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		id, err := taskID(c)
		if err != nil {
			return err
		}

		var req models.LogRequest
		if err := utils.BindJSON(c, &req); err != nil {
			return err
		}

		outcome, err := app.Rewards.LogAmount(c.UserContext(), userID, id, req.Amount, req.Unit)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewOutcomeView(outcome), outcome.Notice)
	}
}

func TasksReopen(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		id, err := taskID(c)
		if err != nil {
			return err
		}

		task, err := app.Rewards.Reopen(c.UserContext(), userID, id)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewTaskView(task), "Task reopened")
	}
}
