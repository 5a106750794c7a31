package repository

import entsql "entgo.io/ent/dialect/sql"

func entDesc() entsql.OrderTermOption { return entsql.OrderDesc() }
