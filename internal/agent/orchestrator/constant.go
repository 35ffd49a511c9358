package orchestrator

import "time"

// System prompt. Date handling rule matters: the extraction pipeline resolves
// relative expressions itself, so the model must pass them through untouched.
const SystemPromptAgent = `Ты полезный AI-ассистент для работы с задачами пользователя. ` +
	`Выполняй запросы пользователя точно и эффективно. ` +
	`При создании, редактировании и удалении задач подтверждай успешное выполнение. ` +
	`Предоставляй подробную информацию о действиях. ` +
	`При ошибках объясняй причину и предлагай решения. ` +
	`Не вычисляй даты самостоятельно. Если пользователь использует относительные выражения (завтра, послезавтра и т.п.), то в поле даты отправляй это выражение как есть.`

// Time context template
const TimeContextTemplate = `

[СИСТЕМНЫЙ КОНТЕКСТ - текущая дата и время]
- Сегодня: %s (%s)
- Завтра: %s
- Текущая неделя: с %s по %s

ПРАВИЛА:
1. Формат дат в ответах - ГГГГ-ММ-ДД.
2. Относительные выражения пользователя (завтра, в пятницу) передавай в инструменты как есть, не преобразуя в даты.
3. Никогда не переспрашивай пользователя о конкретной дате, если он назвал её относительно.`

// User-facing message when the reasoning loop runs out of steps.
const MsgMaxStepsExceeded = `Ассистент думал слишком долго (превышено число шагов). Попробуйте упростить или разбить запрос.`

// Defaults
const (
	DefaultMaxSteps        = 5
	DefaultSessionTTL      = 30 * time.Minute
	DefaultSessionCapacity = 1024

	// MaxSessionHistory bounds remembered messages per session (5 turns).
	MaxSessionHistory = 10
)
