package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/usecase"
)

// TaskHandler maneja tareas y sus asignaciones.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.CreateTaskRequest  true  "Tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tareas
// @Tags         tasks
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ListResponse[dto.TaskResponse]
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tarea
// @Tags         tasks
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID de la tarea"
// @Success      200  {object}  dto.TaskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tarea (parcial)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                 true  "ID de la tarea"
// @Param        body  body      dto.UpdateTaskRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.TaskResponse
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea
// @Tags         tasks
// @Security     Bearer
// @Param        id   path  string  true  "ID de la tarea"
// @Success      204
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Assignees godoc
// @Summary      Usuarios asignados a una tarea
// @Tags         tasks
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "ID de la tarea"
// @Success      200  {array}   dto.TaskAssigneeResponse
// @Router       /api/tasks/{id}/assignees [get]
func (h *TaskHandler) Assignees(c *fiber.Ctx) error {
	out, err := h.uc.ListAssignees(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListAssignments godoc
// @Summary      Listar asignaciones
// @Tags         task-assignees
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  dto.ListResponse[dto.TaskAssigneeResponse]
// @Router       /api/task-assignees [get]
func (h *TaskHandler) ListAssignments(c *fiber.Ctx) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListAllAssignees(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Assign godoc
// @Summary      Asignar usuario a tarea
// @Tags         task-assignees
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      dto.TaskAssigneeRequest  true  "task_id, user_id"
// @Success      201   {object}  dto.TaskAssigneeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/task-assignees [post]
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	var in dto.TaskAssigneeRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Assign(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Unassign godoc
// @Summary      Quitar asignación (por par task_id/user_id)
// @Description  El par puede venir en el body o en la query string.
// @Tags         task-assignees
// @Accept       json
// @Security     Bearer
// @Param        body  body  dto.TaskAssigneeRequest  false  "task_id, user_id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/task-assignees [delete]
func (h *TaskHandler) Unassign(c *fiber.Ctx) error {
	var in dto.TaskAssigneeRequest
	bindPair := bind
	if len(c.Body()) == 0 {
		bindPair = bindQuery
	}
	if err := bindPair(c, &in); err != nil {
		return err
	}
	if err := h.uc.Unassign(c.UserContext(), in); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
