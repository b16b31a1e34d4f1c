package entities

import "time"

type ItemStatus string

const (
	ItemOK     ItemStatus = "Исправно"
	ItemFaulty ItemStatus = "Не исправно"
)

func (s ItemStatus) Valid() bool {
	return s == ItemOK || s == ItemFaulty
}

// DefaultChecklist is the inspection list used when no override is configured.
var DefaultChecklist = []string{
	"Проверка амортизаторов",
	"Проверка рулевого управления",
	"Шаровые опоры",
	"Редуктор",
	"Приводной вал",
	"Коробка передач (протечки)",
	"Двигатель (протечки)",
	"Шрусы (приводные валы)",
	"Подшипники ступиц",
	"Сайлентблоки рычагов",
	"Состояние пружин",
	"Тормозные диски/барабаны",
	"Тормозные колодки",
	"Состояние шлангов и трубок",
	"Гидравлика (тормозная жидкость)",
	"Рулевые наконечники",
	"Стойки стабилизатора",
	"Втулки стабилизатора",
	"Приводной ремень генератора",
	"Радиатор (протечки)",
	"Шланги системы охлаждения",
	"Уровень охлаждающей жидкости",
	"Аккумулятор",
	"Уровень моторного масла",
	"Уровень жидкости ГУР",
	"Уровень тормозной жидкости",
	"Состояние выпускной системы",
	"Состояние подвески",
	"Шины (износ, трещины)",
	"Компьютерная диагностика",
}

type DiagnosticItem struct {
	Name   string     `json:"name"`
	Status ItemStatus `json:"status"`
}

// Diagnostic is the inspection card of a service request. At most one per
// request.
//
// Storage model (DynamoDB):
//   - PK: request_id
type Diagnostic struct {
	RequestID string           `json:"request_id"`
	Items     []DiagnosticItem `json:"items"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewChecklist builds a card with every item in checklist marked OK.
func NewChecklist(requestID string, checklist []string) Diagnostic {
	items := make([]DiagnosticItem, 0, len(checklist))
	for _, name := range checklist {
		items = append(items, DiagnosticItem{Name: name, Status: ItemOK})
	}
	return Diagnostic{RequestID: requestID, Items: items}
}
