package sql

import (
	"embed"
)

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_batch.sql
var RegisterBatch string

//go:embed queries/lookup_loaded_batch.sql
var LookupLoadedBatch string

//go:embed queries/finish_batch.sql
var FinishBatch string

//go:embed queries/supersede_batches.sql
var SupersedeBatches string
