package sqlite

import "fmt"

// Reference tables hold the closed priority/category/status sets; tasks
// reference them by id so an unknown value cannot be stored.
const schema = `
CREATE TABLE IF NOT EXISTS priorities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	sort_order INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	description TEXT,
	color TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS statuses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	is_completed BOOLEAN DEFAULT FALSE,
	sort_order INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	due_date TEXT,
	priority_id INTEGER DEFAULT 2 REFERENCES priorities(id),
	category_id INTEGER DEFAULT 1 REFERENCES categories(id),
	status_id INTEGER DEFAULT 1 REFERENCES statuses(id),
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	started_at TIMESTAMP,
	completed_at TIMESTAMP
);
`

const seed = `
INSERT OR IGNORE INTO priorities (name, sort_order) VALUES
	('low', 1),
	('normal', 2),
	('high', 3);

INSERT OR IGNORE INTO categories (name, description, color) VALUES
	('general', 'Общие задачи', '#6B7280'),
	('work', 'Рабочие задачи', '#3B82F6'),
	('personal', 'Личные дела', '#10B981'),
	('study', 'Обучение', '#F59E0B');

INSERT OR IGNORE INTO statuses (name, is_completed, sort_order) VALUES
	('todo', FALSE, 1),
	('in_progress', FALSE, 2),
	('done', TRUE, 3),
	('blocked', FALSE, 4);
`

func (r *Repository) migrate() error {
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: failed to create schema: %w", err)
	}
	if _, err := r.db.Exec(seed); err != nil {
		return fmt.Errorf("sqlite: failed to seed reference tables: %w", err)
	}
	return nil
}
