package reader

// Field names of the document format.
const (
	FieldModel        = "model"
	FieldTaskGroups   = "taskgroups"
	FieldTitle        = "title"
	FieldTasks        = "tasks"
	FieldParallel     = "parallel"
	FieldType         = "type"
	FieldCode         = "code"
	FieldVariable     = "variable"
	FieldTags         = "tags"
	FieldName         = "name"
	FieldImageName    = "image-name"
	FieldImageVersion = "image-version"
	FieldPlatform     = "platform"
)

// Task type discriminator values.
const (
	TaskTypeShell           = "shell"
	TaskTypeDockerContainer = "docker-container"
	TaskTypeDockerImage     = "docker-image"
)
