package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
	MongoCollectionTransactions = "transactions"
	MongoCollectionMessages     = "messages"
	MongoCollectionDocuments    = "documents"
)
