package postgres

import (
	"cv-manager-backend/internal/domain"
)

func NewCVRepository(db DB) domain.Repository[domain.CV] {
	return newCrudRepo(db, table[domain.CV]{
		name:    "cvs",
		label:   "CV",
		columns: []string{"id", "name", "recipient", "created_at", "edited_at"},
		orderBy: "created_at, id",
		fields: func(e *domain.CV) []any {
			return []any{&e.ID, &e.Name, &e.Recipient, &e.CreatedAt, &e.EditedAt}
		},
	})
}

func NewJobRepository(db DB) domain.Repository[domain.Job] {
	return newCrudRepo(db, table[domain.Job]{
		name:    "jobs",
		label:   "Job",
		parent:  "CV",
		columns: []string{"id", "position", "company", "location", "start", `"end"`, "cv_id"},
		orderBy: "id",
		fields: func(e *domain.Job) []any {
			return []any{&e.ID, &e.Position, &e.Company, &e.Location, &e.Start, &e.End, &e.CVID}
		},
	})
}

func NewTaskRepository(db DB) domain.Repository[domain.Task] {
	return newCrudRepo(db, table[domain.Task]{
		name:    "tasks",
		label:   "Task",
		parent:  "Job",
		columns: []string{"id", "name", "description", "duration", "job_id"},
		orderBy: "id",
		fields: func(e *domain.Task) []any {
			return []any{&e.ID, &e.Name, &e.Description, &e.Duration, &e.JobID}
		},
	})
}

func NewSkillRepository(db DB) domain.Repository[domain.Skill] {
	return newCrudRepo(db, table[domain.Skill]{
		name:    "skills",
		label:   "Skill",
		parent:  "Task",
		columns: []string{"id", "name", "rating", "task_id"},
		orderBy: "id",
		fields: func(e *domain.Skill) []any {
			return []any{&e.ID, &e.Name, &e.Rating, &e.TaskID}
		},
	})
}

func NewSchoolRepository(db DB) domain.Repository[domain.School] {
	return newCrudRepo(db, table[domain.School]{
		name:    "schools",
		label:   "School",
		parent:  "CV",
		columns: []string{"id", "school", "subject", "degree", "location", "start", `"end"`, "cv_id"},
		orderBy: "id",
		fields: func(e *domain.School) []any {
			return []any{&e.ID, &e.School, &e.Subject, &e.Degree, &e.Location, &e.Start, &e.End, &e.CVID}
		},
	})
}

func NewContactRepository(db DB) domain.Repository[domain.Contact] {
	return newCrudRepo(db, table[domain.Contact]{
		name:     "contacts",
		label:    "Contact",
		parent:   "CV",
		conflict: "CV already has a contact",
		columns: []string{
			"id", "first_name", "last_name", "address", "zip_code", "location",
			"phone", "email", "birthdate", "photo", "marital_status", "cv_id",
		},
		orderBy: "id",
		fields: func(e *domain.Contact) []any {
			return []any{
				&e.ID, &e.FirstName, &e.LastName, &e.Address, &e.ZipCode, &e.Location,
				&e.Phone, &e.Email, &e.Birthdate, &e.Photo, &e.MaritalStatus, &e.CVID,
			}
		},
	})
}

func NewKnowledgeRepository(db DB) domain.Repository[domain.Knowledge] {
	return newCrudRepo(db, table[domain.Knowledge]{
		name:    "knowledges",
		label:   "Knowledge",
		columns: []string{"id", "name", "description", "rating"},
		orderBy: "id",
		fields: func(e *domain.Knowledge) []any {
			return []any{&e.ID, &e.Name, &e.Description, &e.Rating}
		},
	})
}

func NewLanguageRepository(db DB) domain.Repository[domain.Language] {
	return newCrudRepo(db, table[domain.Language]{
		name:    "languages",
		label:   "Language",
		columns: []string{"id", "language", "level"},
		orderBy: "id",
		fields: func(e *domain.Language) []any {
			return []any{&e.ID, &e.Language, &e.Level}
		},
	})
}

func NewCertificateRepository(db DB) domain.Repository[domain.Certificate] {
	return newCrudRepo(db, table[domain.Certificate]{
		name:    "certificates",
		label:   "Certificate",
		columns: []string{"id", "name", "description", "date"},
		orderBy: "id",
		fields: func(e *domain.Certificate) []any {
			return []any{&e.ID, &e.Name, &e.Description, &e.Date}
		},
	})
}

func NewItemRepository(db DB) domain.Repository[domain.Item] {
	return newCrudRepo(db, table[domain.Item]{
		name:    "items",
		label:   "Item",
		parent:  "Owner",
		columns: []string{"id", "title", "description", "owner_id"},
		orderBy: "id",
		fields: func(e *domain.Item) []any {
			return []any{&e.ID, &e.Title, &e.Description, &e.OwnerID}
		},
	})
}
