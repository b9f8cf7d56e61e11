package config

type WorkerKeyStruct struct {
	PersistSubmissionsQueue string
}

// WorkerKey names the Redis lists shared between enqueuers and workers.
var WorkerKey = &WorkerKeyStruct{
	PersistSubmissionsQueue: "persist_submissions_queue",
}
