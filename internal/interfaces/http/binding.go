package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores nombran el campo como aparece en el JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// bind parsea el body JSON y aplica las reglas `validate`.
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return check(dst)
}

// bindQuery parsea la query string y aplica las reglas `validate`.
func bindQuery(c *fiber.Ctx, dst interface{}) error {
	if err := c.QueryParser(dst); err != nil {
		return domain.Invalid("query", c.Request().URI().QueryArgs().String(), "parámetros de consulta inválidos: %v", err)
	}
	return check(dst)
}

func check(dst interface{}) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.Invalid(fe.Field(), fmt.Sprint(fe.Value()), "%s no cumple la regla %s", fe.Field(), ruleText(fe))
	}
	return err
}

func ruleText(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// page lee limit/offset de la query con los valores por defecto.
func page(c *fiber.Ctx) (int, int, error) {
	var p dto.PageRequest
	if err := bindQuery(c, &p); err != nil {
		return 0, 0, err
	}
	p.DefaultPage()
	return p.Limit, p.Offset, nil
}
