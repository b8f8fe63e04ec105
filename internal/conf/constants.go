package conf

// DefaultCapacity - Number of buckets per hash table when no capacity is configured
const DefaultCapacity int64 = 100

// KeySeparator - Put between surname and given name to form the composite name key
const KeySeparator string = " "

// NameSeparator - Separates surname from given name in the combined "Surname, GivenName" source token
const NameSeparator string = ", "

// PhonePattern - Format every phone number must follow, e.g. (555) 123-4567
const PhonePattern string = `^\(\d{3}\) \d{3}-\d{4}$`

// ColumnCount - Number of tab separated columns in each source data line
const ColumnCount int = 4

// ColumnSeparator - Separates columns in a source line
const ColumnSeparator string = "\t"

// NameIndex - Name of the directory index keyed by surname and given name
const NameIndex string = "name"

// PhoneIndex - Name of the directory index keyed by fixed phone
const PhoneIndex string = "phone"

// MaxCapacity - Highest number of buckets per hash table, every bucket is allocated up front
const MaxCapacity int64 = 1 << 24
