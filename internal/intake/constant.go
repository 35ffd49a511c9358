package intake

// Stage names, in execution order.
const (
	StagePriority = "priority"
	StageDueDate  = "due_date"
	StageCategory = "category"
	StageAssemble = "assemble"
	StageConfirm  = "confirm"
)

const priorityPromptTemplate = `Ты помощник для управления задачами.
Определи приоритет следующей задачи:

Задача: "%s"

Приоритет нужно нормализовать в одно из значений:
low, normal, high.

Верни только слово с приоритетом.`

const dueDatePromptTemplate = `Ты помощник для управления задачами.
Определи дату и время выполнения из описания задачи, если они указаны.

Задача: "%s"

Верни дату/время в формате ISO 8601 (ГГГГ-ММ-ДД ЧЧ:ММ),
либо "null", если даты нет.`

const categoryPromptTemplate = `Ты помощник для управления задачами.
Отнеси задачу к одной из категорий:
["general", "work", "personal", "study"]

Задача: "%s"

Верни только название категории.`

const confirmationTemplate = `✅ Задача создана:
- Описание: %s
- Приоритет: %s
- Срок: %s
- Категория: %s`

// noDueDateLabel is shown in the confirmation when no due date was resolved
// and the model produced nothing usable either.
const noDueDateLabel = "не указан"
